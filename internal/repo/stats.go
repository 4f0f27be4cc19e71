// Package repo implements the data persistence layer for the RC record cache,
// backed by GORM. This file provides the aggregate query behind the cache
// statistics endpoint.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rtolink/go-rc-gateway/internal/domain"
)

// RCStats returns aggregate metadata for the cache: the total number of
// records and the maximum UpdatedAt timestamp among them.
//
// It executes two lightweight queries. When the cache is empty, the returned
// count is 0 and maxUpdatedAt is nil.
func RCStats(ctx context.Context, db *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.RCRecord{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
