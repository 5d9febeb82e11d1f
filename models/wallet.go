package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Wallet holds a cached balance over its append-only transaction log. The
// log is the source of truth; balance updates and log appends happen in the
// same database transaction, always through PlusFunds/SubFunds.
type Wallet struct {
	ID        uint64          `json:"id" gorm:"primaryKey"`
	UserID    uint64          `json:"user_id" gorm:"uniqueIndex"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:decimal(12,2)" validate:"ValidateBalance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (w Wallet) ValidateBalance(Balance decimal.Decimal) bool {
	return Balance.GreaterThanOrEqual(decimal.Zero)
}

func (w *Wallet) PlusFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("Cannot add funds (user id: " + strconv.FormatUint(w.UserID, 10) + ", amount: " + amount.String() + ", balance: " + w.Balance.String() + ").")
	}

	w.Balance = w.Balance.Add(amount)
	return tx.Save(&w).Error
}

func (w *Wallet) SubFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(w.Balance) {
		return errors.New("Cannot subtract funds (user id: " + strconv.FormatUint(w.UserID, 10) + ", amount: " + amount.String() + ", balance: " + w.Balance.String() + ").")
	}

	w.Balance = w.Balance.Sub(amount)
	return tx.Save(&w).Error
}

// Credit applies a balance increase together with its log entry. Callers
// must hold the wallet row lock (see GetWalletWithLock) so concurrent
// credits to the same wallet serialize.
func (w *Wallet) Credit(tx *gorm.DB, amount decimal.Decimal, description string) error {
	if err := w.PlusFunds(tx, amount); err != nil {
		return err
	}

	transaction := &WalletTransaction{
		WalletID:    w.ID,
		Amount:      amount,
		Direction:   types.DirectionCredit,
		Description: description,
	}

	return tx.Create(transaction).Error
}

func (w *Wallet) Debit(tx *gorm.DB, amount decimal.Decimal, description string) error {
	if err := w.SubFunds(tx, amount); err != nil {
		return err
	}

	transaction := &WalletTransaction{
		WalletID:    w.ID,
		Amount:      amount,
		Direction:   types.DirectionDebit,
		Description: description,
	}

	return tx.Create(transaction).Error
}

// GetWalletWithLock acquires the wallet row FOR UPDATE, creating a
// zero-balance wallet first when the user has none yet.
func GetWalletWithLock(tx *gorm.DB, userID uint64) (*Wallet, error) {
	var wallet *Wallet

	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Two first credits can race here: both miss the locked read, both
		// insert. ON CONFLICT makes the losing insert a no-op (a failed
		// insert would abort the whole postgres transaction), and the
		// follow-up locked read serializes on the winner's row.
		wallet = &Wallet{UserID: userID, Balance: decimal.Zero}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(wallet).Error; err != nil {
			return nil, err
		}

		wallet = nil
		result = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&wallet)
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return wallet, nil
}
