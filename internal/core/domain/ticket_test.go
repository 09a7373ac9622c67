package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProjectTicket(t *testing.T) {
	in := &Ticket{
		ID:                "t-1",
		Type:              "vip",
		Price:             decimal.NewFromFloat(150.0),
		QuantityAvailable: 50,
		QuantitySold:      10,
	}

	view := ProjectTicket(in)
	assert.Equal(t, "t-1", view.ID)
	assert.True(t, view.Available)
	assert.False(t, view.SoldOut)

	in.QuantityAvailable = 0
	view = ProjectTicket(in)
	assert.False(t, view.Available)
	assert.True(t, view.SoldOut)
}

func TestTicketCapacity(t *testing.T) {
	tk := &Ticket{QuantityAvailable: 45, QuantitySold: 15}
	assert.Equal(t, 60, tk.Capacity())
	assert.False(t, tk.SoldOut())
}

func TestTicketUpdateEmpty(t *testing.T) {
	assert.True(t, TicketUpdate{}.Empty())

	tier := "vip"
	assert.False(t, TicketUpdate{Type: &tier}.Empty())

	price := decimal.NewFromFloat(1.0)
	assert.False(t, TicketUpdate{Price: &price}.Empty())
}
