package order_service

import (
	"strings"
	"testing"

	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	number := NewOrderNumber()

	assert.True(t, strings.HasPrefix(number, "DL-"))
	assert.Len(t, number, 23)
	assert.Equal(t, strings.ToUpper(number), number)
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		require.False(t, seen[number])
		seen[number] = true
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	user := &models.User{ID: 1}

	order, err := Checkout(user, CheckoutParams{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
}
