package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func scheduleMembership() *Membership {
	return &Membership{
		ID:   1,
		Name: "Standard",
		Rules: []CommissionRule{
			{MembershipID: 1, Level: 1, Commission: decimal.NewFromInt(100)},
			{MembershipID: 1, Level: 3, Commission: decimal.NewFromInt(25)},
		},
	}
}

func TestCommissionForExactLevel(t *testing.T) {
	membership := scheduleMembership()

	amount, ok := membership.CommissionFor(1)
	assert.True(t, ok)
	assert.Equal(t, "100", amount.String())

	amount, ok = membership.CommissionFor(3)
	assert.True(t, ok)
	assert.Equal(t, "25", amount.String())
}

func TestCommissionForGap(t *testing.T) {
	membership := scheduleMembership()

	amount, ok := membership.CommissionFor(2)
	assert.False(t, ok)
	assert.True(t, amount.IsZero())
}

func TestCommissionForBeyondSchedule(t *testing.T) {
	membership := scheduleMembership()

	_, ok := membership.CommissionFor(4)
	assert.False(t, ok)
}

func TestCommissionForEmptySchedule(t *testing.T) {
	membership := &Membership{ID: 2, Name: "Basic"}

	_, ok := membership.CommissionFor(1)
	assert.False(t, ok)
}

func TestValidateLevel(t *testing.T) {
	assert.True(t, CommissionRule{Level: 1}.ValidateLevel())
	assert.False(t, CommissionRule{Level: 0}.ValidateLevel())
	assert.False(t, CommissionRule{Level: -3}.ValidateLevel())
}
