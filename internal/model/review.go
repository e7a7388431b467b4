package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ratings serialize as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Review is visitor feedback on a project. Reviews are append-only:
// there is no update or delete path.
type Review struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ProjectID uint            `json:"projectId" gorm:"index;not null"`
	Rating    decimal.Decimal `json:"rating" gorm:"type:decimal(3,1);not null"`
	Comment   string          `json:"comment" gorm:"type:text"`
	CreatedAt time.Time       `json:"created_at"`
}
