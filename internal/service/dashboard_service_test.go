package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionRate(t *testing.T) {
	// no leads means no division by zero
	assert.Equal(t, 0.0, conversionRate(0, 0))

	assert.Equal(t, 25.0, conversionRate(1, 4))
	assert.Equal(t, 100.0, conversionRate(1, 1))
	assert.Equal(t, 0.0, conversionRate(0, 10))

	// rounded to two decimals
	assert.Equal(t, 33.33, conversionRate(1, 3))
	assert.Equal(t, 66.67, conversionRate(2, 3))
}
