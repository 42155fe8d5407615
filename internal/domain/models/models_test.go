package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min      int
		want     StockStatus
	}{
		{"out of stock", 0, 10, StockStatusOut},
		{"below threshold", 4, 10, StockStatusLow},
		{"at threshold", 10, 10, StockStatusLow},
		{"above threshold", 11, 10, StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{StockQuantity: tt.quantity, MinStockLevel: tt.min}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestTotalize(t *testing.T) {
	items := []SaleItem{
		{ProductID: 1, Quantity: 2, Price: 10},
		{ProductID: 2, Quantity: 1, Price: 5},
	}

	lines, subtotal, tax, total := Totalize(items, 0)

	require.Len(t, lines, 2)
	assert.Equal(t, 20.0, lines[0].Total)
	assert.Equal(t, 5.0, lines[1].Total)
	assert.Equal(t, 25.0, subtotal)
	assert.InDelta(t, 2.0, tax, 1e-9)
	assert.InDelta(t, 27.0, total, 1e-9)

	// Input line totals are ignored; the originals stay untouched.
	assert.Zero(t, items[0].Total)
}

func TestTotalizeDiscount(t *testing.T) {
	items := []SaleItem{{ProductID: 1, Quantity: 2, Price: 10}}

	_, _, _, total := Totalize(items, 5)

	assert.InDelta(t, 16.6, total, 1e-9)
}

func TestTotalizeEmpty(t *testing.T) {
	lines, subtotal, tax, total := Totalize(nil, 0)
	assert.Empty(t, lines)
	assert.Zero(t, subtotal)
	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestClampReliability(t *testing.T) {
	assert.Equal(t, 0, ClampReliability(-5))
	assert.Equal(t, 100, ClampReliability(150))
	assert.Equal(t, 85, ClampReliability(85))
}

func TestReliabilityBandFor(t *testing.T) {
	assert.Equal(t, BandReliable, ReliabilityBandFor(90))
	assert.Equal(t, BandGood, ReliabilityBandFor(80))
	assert.Equal(t, BandAverage, ReliabilityBandFor(70))
	assert.Equal(t, BandPoor, ReliabilityBandFor(69))
}

func TestValidPaymentStatus(t *testing.T) {
	assert.True(t, ValidPaymentStatus(PaymentPaid))
	assert.True(t, ValidPaymentStatus(PaymentPartial))
	assert.False(t, ValidPaymentStatus("Refunded"))
}

func TestValidCommunicationType(t *testing.T) {
	assert.True(t, ValidCommunicationType(CommunicationCall))
	assert.False(t, ValidCommunicationType("fax"))
}
