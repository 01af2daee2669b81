package pagination

// Meta describes one page of a larger result set.
type Meta struct {
	Total   int64
	Page    int
	Limit   int
	Pages   int
	HasNext bool
	HasPrev bool
}

// NewMeta computes page metadata from the total match count and the
// requested page/limit. Page and limit are normalized to sane minimums so
// metadata stays consistent even for defensive callers.
func NewMeta(total int64, page, limit int) Meta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}

// Offset converts a 1-based page and limit into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return (page - 1) * limit
}
