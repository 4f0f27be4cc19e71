// Package services – RCCacheService
//
// This file implements the cache store for RC records: durable persistence
// through the repo package with an in-process fallback map that takes over
// whenever the database is unreachable. The fallback keeps the read-through
// path functioning (session-scoped caching only) during store outages instead
// of failing every request. Callers cannot observe which mode served them;
// the contract is behaviorally identical apart from durability across
// restarts.
package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rtolink/go-rc-gateway/internal/domain"
	"github.com/rtolink/go-rc-gateway/internal/repo"
)

// defaultProbeTimeout bounds the per-operation availability ping so a hung
// database degrades the request instead of stalling it.
const defaultProbeTimeout = 2 * time.Second

// rcCacheFallback counts store operations served from the in-process map
// instead of the database.
var rcCacheFallback = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "rc_cache_fallback_total",
		Help: "Cache store operations served by the in-process fallback map.",
	},
)

func init() {
	prometheus.MustRegister(rcCacheFallback)
}

// RCCacheService stores RC records keyed by registration number.
//
// Availability is probed per operation: each call pings the database and, on
// failure, is served entirely from the fallback map. Repo-level errors on the
// durable path are also swallowed into the fallback rather than surfaced;
// store trouble must never break a lookup. The map is guarded by a mutex
// because handlers run on concurrent goroutines.
type RCCacheService struct {
	// DB is the GORM handle used for durable persistence. A nil DB puts the
	// service permanently in fallback mode (useful in tests).
	DB *gorm.DB

	// ProbeTimeout bounds the availability ping per operation.
	ProbeTimeout time.Duration

	mu       sync.RWMutex
	fallback map[string]*domain.RCRecord
}

// NewRCCacheService constructs an RCCacheService over db.
func NewRCCacheService(db *gorm.DB) *RCCacheService {
	return &RCCacheService{
		DB:           db,
		ProbeTimeout: defaultProbeTimeout,
		fallback:     make(map[string]*domain.RCRecord),
	}
}

// durable returns the database handle when it is reachable right now, or nil
// to signal fallback mode. Unreachability is logged, never returned.
func (s *RCCacheService) durable(ctx context.Context) *gorm.DB {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		log.Warn().Err(err).Msg("rc cache: database unavailable, using fallback storage")
		return nil
	}
	probe, cancel := context.WithTimeout(ctx, s.probeTimeout())
	defer cancel()
	if err := sqlDB.PingContext(probe); err != nil {
		log.Warn().Err(err).Msg("rc cache: database unreachable, using fallback storage")
		return nil
	}
	return s.DB
}

func (s *RCCacheService) probeTimeout() time.Duration {
	if s.ProbeTimeout > 0 {
		return s.ProbeTimeout
	}
	return defaultProbeTimeout
}

// Lookup returns the cached record for rcNumber, if any. It has no side
// effects and never reaches upstream.
func (s *RCCacheService) Lookup(ctx context.Context, rcNumber string) (*domain.RCRecord, bool) {
	db := s.durable(ctx)
	if db == nil {
		return s.memGet(rcNumber)
	}

	rec, err := repo.GetRCRecord(ctx, db, rcNumber)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			log.Warn().Err(err).Str("rc_number", rcNumber).Msg("rc cache: lookup failed, trying fallback storage")
			return s.memGet(rcNumber)
		}
		return nil, false
	}
	return rec, true
}

// Upsert stores rec keyed by its registration number, replacing any previous
// entry. The operation is idempotent; concurrent upserts for the same key are
// last-write-wins.
func (s *RCCacheService) Upsert(ctx context.Context, rec *domain.RCRecord) {
	db := s.durable(ctx)
	if db == nil {
		s.memPut(rec)
		return
	}
	if err := repo.UpsertRCRecord(ctx, db, rec); err != nil {
		log.Warn().Err(err).Str("rc_number", rec.RCNumber).Msg("rc cache: upsert failed, using fallback storage")
		s.memPut(rec)
	}
}

// Exists reports whether a record for rcNumber is cached.
func (s *RCCacheService) Exists(ctx context.Context, rcNumber string) bool {
	db := s.durable(ctx)
	if db == nil {
		_, ok := s.memGet(rcNumber)
		return ok
	}
	ok, err := repo.ExistsRCRecord(ctx, db, rcNumber)
	if err != nil {
		log.Warn().Err(err).Str("rc_number", rcNumber).Msg("rc cache: exists check failed, trying fallback storage")
		_, found := s.memGet(rcNumber)
		return found
	}
	return ok
}

// Delete evicts the record for rcNumber. Evicting an absent entry is a no-op.
func (s *RCCacheService) Delete(ctx context.Context, rcNumber string) {
	db := s.durable(ctx)
	if db == nil {
		s.memDelete(rcNumber)
		return
	}
	if err := repo.DeleteRCRecord(ctx, db, rcNumber); err != nil {
		log.Warn().Err(err).Str("rc_number", rcNumber).Msg("rc cache: delete failed, using fallback storage")
		s.memDelete(rcNumber)
	}
}

// Stats returns the total record count and the most recent update timestamp,
// computed on demand.
func (s *RCCacheService) Stats(ctx context.Context) (total int64, lastUpdated *time.Time) {
	db := s.durable(ctx)
	if db == nil {
		return s.memStats()
	}
	count, max, err := repo.RCStats(ctx, db)
	if err != nil {
		log.Warn().Err(err).Msg("rc cache: stats query failed, using fallback storage")
		return s.memStats()
	}
	return count, max
}

// ListPage returns a page of cached records, newest update first, together
// with the total count.
func (s *RCCacheService) ListPage(ctx context.Context, page, pageSize int) ([]domain.RCRecord, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	db := s.durable(ctx)
	if db == nil {
		return s.memPage(offset, pageSize)
	}

	total, err := repo.CountRCRecords(ctx, db)
	if err != nil {
		log.Warn().Err(err).Msg("rc cache: count failed, using fallback storage")
		return s.memPage(offset, pageSize)
	}
	if total == 0 {
		return []domain.RCRecord{}, 0
	}
	items, err := repo.ListRCRecordsPage(ctx, db, offset, pageSize)
	if err != nil {
		log.Warn().Err(err).Msg("rc cache: list failed, using fallback storage")
		return s.memPage(offset, pageSize)
	}
	return items, total
}

//
// In-process fallback map
//

func (s *RCCacheService) memGet(rcNumber string) (*domain.RCRecord, bool) {
	rcCacheFallback.Inc()
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.fallback[rcNumber]
	if !ok {
		return nil, false
	}
	cp := *rec
	return &cp, true
}

func (s *RCCacheService) memPut(rec *domain.RCRecord) {
	rcCacheFallback.Inc()
	now := time.Now().UTC()
	cp := *rec
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.fallback[cp.RCNumber]; ok {
		cp.CreatedAt = prev.CreatedAt
	} else {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	s.fallback[cp.RCNumber] = &cp
}

func (s *RCCacheService) memDelete(rcNumber string) {
	rcCacheFallback.Inc()
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fallback, rcNumber)
}

func (s *RCCacheService) memStats() (int64, *time.Time) {
	rcCacheFallback.Inc()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.fallback) == 0 {
		return 0, nil
	}
	var max time.Time
	for _, rec := range s.fallback {
		if rec.UpdatedAt.After(max) {
			max = rec.UpdatedAt
		}
	}
	return int64(len(s.fallback)), &max
}

func (s *RCCacheService) memPage(offset, limit int) ([]domain.RCRecord, int64) {
	rcCacheFallback.Inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.RCRecord, 0, len(s.fallback))
	for _, rec := range s.fallback {
		all = append(all, *rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UpdatedAt.After(all[j].UpdatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []domain.RCRecord{}, total
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total
}
