package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/ticket-inventory/internal/core/domain"
)

func TestValidator_QuantityBounds(t *testing.T) {
	v := NewValidator(100)

	cases := []struct {
		name     string
		quantity int
		wantOK   bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"one", 1, true},
		{"at limit", 100, true},
		{"over limit", 101, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(domain.PurchaseRequest{TicketID: "t-1", Quantity: tc.quantity})
			if tc.wantOK {
				assert.NoError(t, err)
			} else {
				var valErr *domain.ValidationError
				require.ErrorAs(t, err, &valErr)
				assert.Equal(t, "quantity", valErr.Field)
			}
		})
	}
}

func TestValidator_TicketID(t *testing.T) {
	v := NewValidator(100)

	err := v.Validate(domain.PurchaseRequest{TicketID: "", Quantity: 1})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "ticket_id", valErr.Field)

	err = v.Validate(domain.PurchaseRequest{TicketID: strings.Repeat("x", 65), Quantity: 1})
	require.ErrorAs(t, err, &valErr)

	err = v.Validate(domain.PurchaseRequest{TicketID: "has space", Quantity: 1})
	require.ErrorAs(t, err, &valErr)

	assert.NoError(t, v.Validate(domain.PurchaseRequest{TicketID: "concert-2026", Quantity: 1}))
}

func TestValidator_IDChecksComeFirst(t *testing.T) {
	v := NewValidator(100)

	err := v.Validate(domain.PurchaseRequest{TicketID: "", Quantity: 0})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "ticket_id", valErr.Field)
}

func TestNewValidator_DefaultLimit(t *testing.T) {
	v := NewValidator(0)
	assert.Equal(t, DefaultMaxPurchaseQuantity, v.MaxQuantity)
}
