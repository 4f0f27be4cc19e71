// Package repo implements the data persistence layer for the RC record cache,
// backed by GORM. This file provides repository functions for RCRecord.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no business logic, only CRUD persistence
// and query composition. Connectivity failures are propagated raw; the
// service layer decides whether to degrade to its in-process fallback.
//
// Error semantics:
//   - When a record is not found, GetRCRecord returns gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rtolink/go-rc-gateway/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across the service layer.
var ErrNotFound = gorm.ErrRecordNotFound

// GetRCRecord fetches a single record by registration number, or ErrNotFound.
func GetRCRecord(ctx context.Context, db *gorm.DB, rcNumber string) (*domain.RCRecord, error) {
	var rec domain.RCRecord
	err := db.WithContext(ctx).
		Where("rc_number = ?", rcNumber).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpsertRCRecord inserts or replaces the record keyed by its registration
// number. A second upsert for the same number overwrites every attribute
// column in place (last write wins); it never duplicates the row. The
// operation is idempotent: applying the same record twice leaves identical
// state apart from updated_at.
func UpsertRCRecord(ctx context.Context, db *gorm.DB, rec *domain.RCRecord) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rc_number"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

// ExistsRCRecord reports whether a record for rcNumber is present.
func ExistsRCRecord(ctx context.Context, db *gorm.DB, rcNumber string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.RCRecord{}).
		Where("rc_number = ?", rcNumber).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// DeleteRCRecord removes the record for rcNumber. Deleting an absent record
// is a no-op, not an error.
func DeleteRCRecord(ctx context.Context, db *gorm.DB, rcNumber string) error {
	return db.WithContext(ctx).
		Where("rc_number = ?", rcNumber).
		Delete(&domain.RCRecord{}).Error
}

// CountRCRecords returns the total number of cached records.
func CountRCRecords(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.RCRecord{}).
		Count(&total).Error
	return total, err
}

// ListRCRecordsPage returns a page of cached records ordered by most recent
// update first. Use CountRCRecords to obtain the total for pagination
// metadata.
func ListRCRecordsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.RCRecord, error) {
	var out []domain.RCRecord
	err := db.WithContext(ctx).
		Order("updated_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
