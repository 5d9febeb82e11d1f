package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlusFundsRejectsNonPositive(t *testing.T) {
	wallet := &Wallet{UserID: 1, Balance: decimal.NewFromInt(100)}

	assert.Error(t, wallet.PlusFunds(nil, decimal.Zero))
	assert.Error(t, wallet.PlusFunds(nil, decimal.NewFromInt(-10)))
	assert.Equal(t, "100", wallet.Balance.String())
}

func TestSubFundsRejectsOverdraft(t *testing.T) {
	wallet := &Wallet{UserID: 1, Balance: decimal.NewFromInt(50)}

	assert.Error(t, wallet.SubFunds(nil, decimal.NewFromInt(51)))
	assert.Error(t, wallet.SubFunds(nil, decimal.Zero))
	assert.Equal(t, "50", wallet.Balance.String())
}

func TestValidateBalance(t *testing.T) {
	assert.True(t, Wallet{Balance: decimal.Zero}.ValidateBalance(decimal.Zero))
	assert.True(t, Wallet{}.ValidateBalance(decimal.NewFromInt(10)))
	assert.False(t, Wallet{}.ValidateBalance(decimal.NewFromInt(-1)))
}
