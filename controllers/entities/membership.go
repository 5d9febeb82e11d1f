package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MembershipEntity struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

type MembershipPurchaseEntity struct {
	ID           uint64    `json:"id"`
	MembershipID uint64    `json:"membership_id"`
	Membership   string    `json:"membership"`
	IsActive     bool      `json:"is_active"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

type NotificationEntity struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
