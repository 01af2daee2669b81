package dto

// APIError carries a machine-readable error code and optional field details.
type APIError struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// APIResponse is the uniform envelope for every JSON response.
type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope.
func Fail(message string, code string, details any) APIResponse {
	return APIResponse{Success: false, Message: message, Error: &APIError{Code: code, Details: details}}
}

// PageMeta is the pagination metadata carried by list responses.
type PageMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}
