package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
	"github.com/finmex/onboarding_backend/internal/storage"
)

// documentHandler handles the document catalog, uploads and reviews.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	fileStorage     storage.FileStorage
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, fs storage.FileStorage) *documentHandler {
	return &documentHandler{documentService: ds, fileStorage: fs}
}

// registerDocumentRoutes registers catalog and submission routes.
func registerDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade, fs storage.FileStorage) {
	h := newDocumentHandler(ds, fs)

	catalog := rg.Group("/tipos-documento")
	{
		catalog.GET("", h.listDocumentTypes)
		catalog.POST("", middleware.RequireRoles(string(domain.RoleAdmin)), h.createDocumentType)
	}

	documents := rg.Group("/documentos")
	{
		documents.POST("", h.submitDocument)
		documents.GET("/:id", h.getSubmission)
		documents.PATCH("/:id/revision", middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RoleAnalyst)), h.reviewDocument)
	}
}

// listDocumentTypes godoc
// @Summary List the document catalog
// @Description Lists required document types, optionally filtered by person type.
// @Tags documentos
// @Produce json
// @Param personType query string false "Filter by person type" Enums(FISICA, FISICA_EMPRESARIAL, MORAL)
// @Success 200 {object} dto.APIResponse{data=[]dto.DocumentTypeResponse}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /tipos-documento [get]
func (h *documentHandler) listDocumentTypes(c *gin.Context) {
	var params dto.ListDocumentTypesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	var types []domain.RequiredDocumentType
	var err error
	if params.PersonType != "" {
		types, err = h.documentService.RequiredTypesFor(c.Request.Context(), domain.PersonType(params.PersonType))
	} else {
		types, err = h.documentService.ListDocumentTypes(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Document types retrieved", dto.ToDocumentTypeResponses(types)))
}

// createDocumentType godoc
// @Summary Create a document type
// @Description Adds a catalog entry. Admin only.
// @Tags documentos
// @Accept json
// @Produce json
// @Param docType body dto.CreateDocumentTypeRequest true "Document type details"
// @Success 201 {object} dto.APIResponse{data=dto.DocumentTypeResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /tipos-documento [post]
func (h *documentHandler) createDocumentType(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	docType, err := h.documentService.CreateDocumentType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Document type created", dto.ToDocumentTypeResponse(docType)))
}

// submitDocument godoc
// @Summary Submit a document
// @Description Uploads a document blob (multipart field "archivo") and records a pending submission for the client.
// @Tags documentos
// @Accept multipart/form-data
// @Produce json
// @Param clientID formData string true "Client ID"
// @Param docTypeID formData string true "Document type ID"
// @Param documentDate formData string true "Document date (YYYY-MM-DD)"
// @Param archivo formData file true "Document file (PDF, JPEG or PNG, max 5MB)"
// @Success 201 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 413 {object} dto.APIResponse
// @Failure 415 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documentos [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Multipart field 'archivo' is required", "VALIDATION_ERROR", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	storageURL, err := h.fileStorage.Save(c.Request.Context(), contentType, fileHeader.Size, file)
	if err != nil {
		respondError(c, err)
		return
	}

	submission, err := h.documentService.SubmitDocument(c.Request.Context(), req, storageURL, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Document uploaded", slog.String("submission_id", submission.SubmissionID), slog.Int64("size", fileHeader.Size))
	c.JSON(http.StatusCreated, dto.OK("Document submitted", dto.ToSubmissionResponse(submission)))
}

// getSubmission godoc
// @Summary Get a document submission
// @Description Retrieves a document submission by ID.
// @Tags documentos
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documentos/{id} [get]
func (h *documentHandler) getSubmission(c *gin.Context) {
	submission, err := h.documentService.GetSubmissionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Submission retrieved", dto.ToSubmissionResponse(submission)))
}

// reviewDocument godoc
// @Summary Review a document submission
// @Description Applies an approve/reject decision to a pending submission. Analyst or admin.
// @Tags documentos
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param review body dto.ReviewDocumentRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documentos/{id}/revision [patch]
func (h *documentHandler) reviewDocument(c *gin.Context) {
	var req dto.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reviewerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "UNAUTHORIZED", nil))
		return
	}

	submission, err := h.documentService.ReviewDocument(c.Request.Context(), c.Param("id"), domain.DocumentStatus(req.Decision), reviewerUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Document reviewed", dto.ToSubmissionResponse(submission)))
}
