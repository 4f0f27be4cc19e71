// Cache administration HTTP handlers.
//
// This file exposes maintenance endpoints over the RC record cache:
//   - GET    /v2/rc/cache/stats          (record count + last update)
//   - GET    /v2/rc/cache                (paginated listing)
//   - DELETE /v2/rc/cache/{rc_number}    (evict one entry)
//
// Eviction is the only way a cached record is deleted; the read-through path
// never removes entries. A re-fetch after eviction repopulates the cache.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rtolink/go-rc-gateway/internal/domain"
	"github.com/rtolink/go-rc-gateway/internal/utils"
)

//
// DTOs
//

// CacheStatsResponse reports aggregate cache metadata.
type CacheStatsResponse struct {
	TotalRecords int64      `json:"total_records"`
	LastUpdated  *time.Time `json:"last_updated"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListCacheResponse wraps a page of cached records and pagination information.
type ListCacheResponse struct {
	Records    []domain.RCRecord `json:"records"`
	Pagination Pagination        `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// CacheStats godoc
// @ID          cacheStats
// @Summary     Cache statistics
// @Description Returns the total number of cached RC records and the most recent update timestamp.
// @Tags        RC Cache
// @Produce     json
//
// @Success     200  {object}  handlers.CacheStatsResponse
// @Router      /v2/rc/cache/stats [get]
func (h *Handlers) CacheStats(c *gin.Context) {
	total, last := h.cache.Stats(c.Request.Context())
	ok(c, http.StatusOK, CacheStatsResponse{TotalRecords: total, LastUpdated: last})
}

// ListCache godoc
// @ID          listCache
// @Summary     List cached records (paginated)
// @Description Returns a page of cached RC records ordered by most recent update.
// @Tags        RC Cache
// @Produce     json
//
// @Param       page       query  int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query  int  false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.ListCacheResponse
// @Router      /v2/rc/cache [get]
func (h *Handlers) ListCache(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total := h.cache.ListPage(c.Request.Context(), page, pageSize)

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListCacheResponse{
		Records: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// EvictCache godoc
// @ID          evictCache
// @Summary     Evict a cached record
// @Description Removes the record for the given registration number. Evicting an absent entry succeeds.
// @Tags        RC Cache
// @Produce     json
//
// @Param       rc_number  path  string  true  "Registration number"  example(MH12AB1234)
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Missing rc_number"
// @Router      /v2/rc/cache/{rc_number} [delete]
func (h *Handlers) EvictCache(c *gin.Context) {
	rcNumber := c.Param("rc_number")
	if rcNumber == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "rc_number is required")
		return
	}
	h.cache.Delete(c.Request.Context(), rcNumber)
	noContent(c)
}
