// Package counterrepo provides named monotonic counters backed by a single
// postgres table. The job-post CRID sequence lives here.
package counterrepo

import (
	"context"

	"gorm.io/gorm"

	"staffing/internal/pkg/errs"
)

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name string `gorm:"primaryKey"`
	Seq  int64
}

// TableName overrides GORM's default naming to use "counters".
func (CounterDTO) TableName() string {
	return "counters"
}

// GormSequenceGenerator implements SequenceGenerator using GORM.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a new GORM sequence generator.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next atomically increments the named counter and returns the new value.
// The first call for a name returns 1. The increment happens in a single
// statement, so concurrent callers never observe the same value.
func (g *GormSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var seq int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, seq)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`, name).Scan(&seq).Error
	if err != nil {
		return 0, err
	}

	return seq, nil
}
