package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionEntity struct {
	ID           uint64          `json:"id"`
	BuyerID      uint64          `json:"buyer_id"`
	MembershipID uint64          `json:"membership_id"`
	Level        int             `json:"level"`
	EarnAmount   decimal.Decimal `json:"earn_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

type DownlineEntity struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	MemberStatus string `json:"member_status"`
	Level        int    `json:"level"`
}

type ReferralSummaryEntity struct {
	ID          uint64          `json:"id"`
	Day         string          `json:"day"`
	EarnedTotal decimal.Decimal `json:"earned_total"`
	BuyerCount  uint64          `json:"buyer_count"`
	NewFriends  uint64          `json:"new_friends"`
	CreatedAt   time.Time       `json:"created_at"`
}
