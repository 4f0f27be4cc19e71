// Package services – RCService
//
// This file implements the read-through orchestrator for RC lookups: check
// the cache store, on hit return immediately without any outbound call, on
// miss fetch from the upstream provider, then normalize and persist a
// successful result before forwarding the provider's envelope unchanged.
//
// No single-flight guarantee is made: two concurrent lookups for the same
// absent number may both miss and both fetch, both then upserting. Upserts
// are idempotent per key, so the duplicate work costs an extra upstream call,
// never data corruption.
package services

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rtolink/go-rc-gateway/internal/domain"
	"github.com/rtolink/go-rc-gateway/internal/normalize"
	"github.com/rtolink/go-rc-gateway/internal/upstream"
)

// cacheHitMessage marks envelopes served from the cache rather than upstream.
const cacheHitMessage = "RC details retrieved from cache"

// rcLookups counts read-through resolutions by outcome: hit, miss_stored,
// miss_failed, upstream_error.
var rcLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rc_cache_lookups_total",
		Help: "Total RC read-through lookups by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(rcLookups)
}

// RCStore is the cache capability the orchestrator depends on. Both the
// durable-backed RCCacheService and test fakes satisfy it.
type RCStore interface {
	Lookup(ctx context.Context, rcNumber string) (*domain.RCRecord, bool)
	Upsert(ctx context.Context, rec *domain.RCRecord)
}

// RCService resolves registration numbers through the cache, falling through
// to the upstream provider on a miss.
type RCService struct {
	Cache   RCStore
	Fetcher upstream.Fetcher
}

// NewRCService constructs an RCService over the given store and fetcher.
func NewRCService(cache RCStore, fetcher upstream.Fetcher) *RCService {
	return &RCService{Cache: cache, Fetcher: fetcher}
}

// GetOrFetch resolves rcNumber and always returns an envelope, never an
// error; transport failures surface as a status:false envelope.
//
//  1. Cache hit: the stored record is converted back to the wire shape and
//     wrapped in a success envelope whose message marks the cache origin.
//     Zero outbound calls happen on this path.
//  2. Cache miss: the upstream provider is called with the forwarded
//     Authorization credential.
//  3. A transport error becomes a 502-shaped failure envelope; nothing is
//     cached.
//  4. A non-success envelope (or one without data) is forwarded verbatim;
//     failures are never cached.
//  5. A success envelope is normalized and upserted, then returned to the
//     caller unchanged. The round trip back through the normalizer only
//     happens for cache hits on subsequent requests.
func (s *RCService) GetOrFetch(ctx context.Context, rcNumber, authorization string) *upstream.Envelope {
	if rec, ok := s.Cache.Lookup(ctx, rcNumber); ok {
		rcLookups.WithLabelValues("hit").Inc()
		return &upstream.Envelope{
			StatusCode: http.StatusOK,
			Message:    cacheHitMessage,
			Status:     true,
			Data:       normalize.ToData(rec),
		}
	}

	env, err := s.Fetcher.FetchRC(ctx, rcNumber, authorization)
	if err != nil {
		rcLookups.WithLabelValues("upstream_error").Inc()
		return &upstream.Envelope{
			StatusCode: http.StatusBadGateway,
			Message:    "RC verification service is unavailable",
			Status:     false,
		}
	}

	if !env.Status || env.Data == nil {
		rcLookups.WithLabelValues("miss_failed").Inc()
		return env
	}

	s.Cache.Upsert(ctx, normalize.ToRecord(env.Data))
	rcLookups.WithLabelValues("miss_stored").Inc()
	return env
}
