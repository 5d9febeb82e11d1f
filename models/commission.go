package models

import (
	"strconv"
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/shopspring/decimal"
)

// Commission is the audit row for one upline credit: who earned, from whose
// purchase, at which level. It is written in the same transaction as the
// wallet credit.
type Commission struct {
	ID           uint64          `json:"id" gorm:"primaryKey"`
	UserID       uint64          `json:"user_id" gorm:"index"`
	BuyerID      uint64          `json:"buyer_id"`
	PurchaseID   uint64          `json:"purchase_id" gorm:"index"`
	MembershipID uint64          `json:"membership_id"`
	Level        int             `json:"level"`
	EarnAmount   decimal.Decimal `json:"earn_amount" gorm:"type:decimal(12,2)"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (c *Commission) WriteToInflux() {
	amount, _ := c.EarnAmount.Float64()

	tags := map[string]string{
		"membership": strconv.FormatUint(c.MembershipID, 10),
		"level":      strconv.Itoa(c.Level),
	}
	fields := map[string]interface{}{
		"id":          int32(c.ID),
		"user_id":     int32(c.UserID),
		"buyer_id":    int32(c.BuyerID),
		"earn_amount": amount,
		"created_at":  c.CreatedAt,
	}

	config.InfluxDB.NewPoint("commissions", tags, fields)
}
