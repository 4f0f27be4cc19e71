// RC verification HTTP handlers.
//
// This file exposes the vehicle registration lookup endpoints:
//   - POST /rc/rc_verify        (v1, plain upstream proxy, no caching)
//   - POST /v1/rc/rc_verify     (alias of the above)
//   - POST /v2/rc/rc_verify     (read-through cached)
//
// Handlers are transport-thin: they validate input, call application
// services, and forward the provider envelope as the response body. Error
// bodies on these endpoints use the provider's {status,message,statuscode}
// shape for client compatibility.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rtolink/go-rc-gateway/internal/domain"
	"github.com/rtolink/go-rc-gateway/internal/http/middleware"
	"github.com/rtolink/go-rc-gateway/internal/upstream"
)

//
// Service contracts (context-aware)
//

// RCResolver resolves a registration number through the read-through cache.
//
// Implementations must be safe for concurrent use and must honor the provided
// context for cancellation and timeouts.
type RCResolver interface {
	// GetOrFetch serves from cache when possible, otherwise fetches upstream,
	// caching a successful result. It always returns an envelope.
	GetOrFetch(ctx context.Context, rcNumber, authorization string) *upstream.Envelope
}

// CacheAdmin exposes the cache maintenance operations used by the admin
// endpoints.
type CacheAdmin interface {
	// Stats returns the record count and most recent update time.
	Stats(ctx context.Context) (total int64, lastUpdated *time.Time)
	// ListPage returns a page of cached records and the total count.
	ListPage(ctx context.Context, page, pageSize int) ([]domain.RCRecord, int64)
	// Delete evicts one record; evicting an absent entry is a no-op.
	Delete(ctx context.Context, rcNumber string)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for RC verification and cache
// administration. It depends on abstract contracts to keep transport concerns
// separate from orchestration logic.
type Handlers struct {
	resolver RCResolver
	fetcher  upstream.Fetcher
	cache    CacheAdmin
}

// New constructs a Handlers instance bound to the given collaborators.
func New(resolver RCResolver, fetcher upstream.Fetcher, cache CacheAdmin) *Handlers {
	return &Handlers{resolver: resolver, fetcher: fetcher, cache: cache}
}

//
// DTOs
//

// VerifyRCRequest is the JSON payload for the verification endpoints.
type VerifyRCRequest struct {
	// IDNumber is the vehicle registration number to look up.
	IDNumber string `json:"id_number" binding:"required" example:"MH12AB1234"`
}

//
// Helpers
//

// bindVerifyRequest validates the request body and Authorization header
// shared by both verification endpoints. It writes the failure response
// itself and returns ok=false when the request is unusable.
func bindVerifyRequest(c *gin.Context) (rcNumber, authorization string, ok bool) {
	authorization = c.GetHeader("Authorization")
	if authorization == "" {
		failEnvelope(c, http.StatusUnauthorized, "Missing Authorization header")
		return "", "", false
	}

	var req VerifyRCRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.IDNumber) == "" {
		failEnvelope(c, http.StatusBadRequest, "id_number is required")
		return "", "", false
	}
	return strings.TrimSpace(req.IDNumber), authorization, true
}

//
// Handlers
//

// VerifyRC godoc
// @ID          verifyRC
// @Summary     Get vehicle RC details (no caching)
// @Description Proxies the registration lookup straight to the upstream provider and forwards its envelope.
// @Tags        RC Verification
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token forwarded upstream"
// @Param       body           body    handlers.VerifyRCRequest  true  "Registration number"
//
// @Success     200  {object}  upstream.Envelope
// @Failure     400  {object}  upstream.Envelope  "Missing id_number"
// @Failure     401  {object}  upstream.Envelope  "Missing Authorization header"
// @Failure     502  {object}  upstream.Envelope  "Upstream unavailable"
// @Router      /rc/rc_verify [post]
func (h *Handlers) VerifyRC(c *gin.Context) {
	rcNumber, authorization, valid := bindVerifyRequest(c)
	if !valid {
		return
	}

	env, err := h.fetcher.FetchRC(c.Request.Context(), rcNumber, authorization)
	if err != nil {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Str("rc_number", rcNumber).Msg("upstream fetch failed")
		failEnvelope(c, http.StatusBadGateway, "RC verification service is unavailable")
		return
	}
	ok(c, http.StatusOK, env)
}

// VerifyRCCached godoc
// @ID          verifyRCCached
// @Summary     Get vehicle RC details (read-through cached)
// @Description Serves a previously fetched record from the cache when present; otherwise fetches upstream, caches a successful result, and forwards the provider envelope.
// @Tags        RC Verification
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token forwarded upstream"
// @Param       body           body    handlers.VerifyRCRequest  true  "Registration number"
//
// @Success     200  {object}  upstream.Envelope "Envelope from cache or upstream (including upstream failure envelopes)"
// @Failure     400  {object}  upstream.Envelope  "Missing id_number"
// @Failure     401  {object}  upstream.Envelope  "Missing Authorization header"
// @Router      /v2/rc/rc_verify [post]
func (h *Handlers) VerifyRCCached(c *gin.Context) {
	rcNumber, authorization, valid := bindVerifyRequest(c)
	if !valid {
		return
	}

	env := h.resolver.GetOrFetch(c.Request.Context(), rcNumber, authorization)
	// Upstream failure envelopes are forwarded verbatim with HTTP 200, the
	// same way the proxied API behaves.
	ok(c, http.StatusOK, env)
}
