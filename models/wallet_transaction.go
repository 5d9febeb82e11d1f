package models

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
)

// WalletTransaction rows are append-only; nothing in the codebase updates or
// deletes them.
type WalletTransaction struct {
	ID          uint64                     `json:"id" gorm:"primaryKey"`
	WalletID    uint64                     `json:"wallet_id" gorm:"index"`
	Amount      decimal.Decimal            `json:"amount" gorm:"type:decimal(12,2)" validate:"ValidateAmount"`
	Direction   types.TransactionDirection `json:"direction" gorm:"size:10;default:credit"`
	Description string                     `json:"description"`
	CreatedAt   time.Time                  `json:"created_at"`
}

func (t WalletTransaction) ValidateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive()
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
