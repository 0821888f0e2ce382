package controller

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/jbeshir/swipe-feedback/internal/datasources"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

type ContentListResponse struct {
	Data     []domain.Content    `json:"data"`
	Metadata ContentListMetadata `json:"metadata"`
}

type ContentListMetadata struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// ContentList handles GET /v1/content.
type ContentList struct {
	Lister      datasources.ContentLister
	CacheMaxAge time.Duration
}

func (c ContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := contentFiltersFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse content filters in query string", err)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse pagination", err)
		return
	}

	items, total, err := c.Lister.ListContent(ctx, filters, page, pageSize)
	if err != nil {
		writeError(ctx, w, "unable to list content", err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	writeJSON(ctx, w, http.StatusOK, ContentListResponse{
		Data: items,
		Metadata: ContentListMetadata{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

var validContentTypes = []domain.ContentType{
	domain.ContentTypeImage,
	domain.ContentTypeVideo,
	domain.ContentTypeAudio,
}

func contentFiltersFromQuery(q url.Values) (domain.ContentFilters, error) {
	filters := domain.ContentFilters{TemplateID: q.Get("template_id")}

	if q.Has("type") {
		contentType := domain.ContentType(q.Get("type"))
		if !slices.Contains(validContentTypes, contentType) {
			return domain.ContentFilters{}, fmt.Errorf("unrecognised content type [%s]: %w", contentType, errBadRequest)
		}
		filters.Type = contentType
	}

	return filters, nil
}
