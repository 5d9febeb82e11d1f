package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralSummary is one user's aggregated commission activity for one day,
// produced by the nightly cron job.
type ReferralSummary struct {
	ID          uint64          `json:"id" gorm:"primaryKey"`
	UserID      uint64          `json:"user_id" gorm:"index:idx_summary_user_day"`
	Day         string          `json:"day" gorm:"size:10;index:idx_summary_user_day"`
	EarnedTotal decimal.Decimal `json:"earned_total" gorm:"type:decimal(12,2)"`
	BuyerCount  uint64          `json:"buyer_count"`
	NewFriends  uint64          `json:"new_friends"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
