package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-12.34", FormatCurrency(decimal.NewFromFloat(-12.34)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "6.00%", FormatPercentage(decimal.NewFromInt(6)))
	assert.Equal(t, "12.50%", FormatPercentage(decimal.NewFromFloat(12.5)))
}
