package entities

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
)

type WalletEntity struct {
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type WalletTransactionEntity struct {
	ID          uint64                     `json:"id"`
	Amount      decimal.Decimal            `json:"amount"`
	Direction   types.TransactionDirection `json:"direction"`
	Description string                     `json:"description"`
	CreatedAt   time.Time                  `json:"created_at"`
}
