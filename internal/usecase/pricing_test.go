package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/pjcweb/site-backend/internal/entity"
)

func TestCalculatePriceStarter(t *testing.T) {
	t.Run("Zero Pages Uses Included Count", func(t *testing.T) {
		quote, err := CalculatePrice("starter", 0)

		assert.NoError(t, err)
		assert.Equal(t, "starter", quote.PackageID)
		assert.Equal(t, 3, quote.TotalPages)
		assert.Equal(t, 0, quote.AdditionalPages)
		assert.Equal(t, 0.0, quote.AdditionalCost)
		assert.Equal(t, 325.0, quote.FinalPrice)
	})

	t.Run("Pages Above Included Bill Per Page", func(t *testing.T) {
		quote, err := CalculatePrice("starter", 5)

		assert.NoError(t, err)
		assert.Equal(t, 5, quote.TotalPages)
		assert.Equal(t, 2, quote.AdditionalPages)
		assert.Equal(t, 212.0, quote.AdditionalCost)
		assert.Equal(t, 537.0, quote.FinalPrice)
	})

	t.Run("Pages At Maximum Allowed", func(t *testing.T) {
		quote, err := CalculatePrice("starter", 10)

		assert.NoError(t, err)
		assert.Equal(t, 7, quote.AdditionalPages)
		assert.Equal(t, 325.0+7*106.0, quote.FinalPrice)
	})

	t.Run("Pages Over Maximum Rejected", func(t *testing.T) {
		quote, err := CalculatePrice("starter", 11)

		assert.Nil(t, quote)
		assert.ErrorIs(t, err, entity.ErrPageCountExceeded)
	})
}

func TestCalculatePriceGrowth(t *testing.T) {
	quote, err := CalculatePrice("growth", 10)

	assert.NoError(t, err)
	assert.Equal(t, 4, quote.AdditionalPages)
	assert.Equal(t, 4*96.0, quote.AdditionalCost)
	assert.Equal(t, 747.0+4*96.0, quote.FinalPrice)
}

func TestCalculatePriceScale(t *testing.T) {
	quote, err := CalculatePrice("scale", 12)

	assert.NoError(t, err)
	assert.Equal(t, 0, quote.AdditionalPages)
	assert.Equal(t, 1499.0, quote.FinalPrice)
}

func TestCalculatePriceFlatServices(t *testing.T) {
	t.Run("Moving Ignores Pages", func(t *testing.T) {
		quote, err := CalculatePrice("moving", 50)

		assert.NoError(t, err)
		assert.Equal(t, 499.0, quote.FinalPrice)
		assert.Equal(t, 0, quote.AdditionalPages)
	})

	t.Run("Transport Ignores Pages", func(t *testing.T) {
		quote, err := CalculatePrice("transport", 999)

		assert.NoError(t, err)
		assert.Equal(t, 899.0, quote.FinalPrice)
	})
}

func TestCalculatePriceUnknownPackage(t *testing.T) {
	quote, err := CalculatePrice("enterprise", 1)

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, entity.ErrPackageNotFound)
}

func TestCalculatePriceNegativePages(t *testing.T) {
	quote, err := CalculatePrice("growth", -3)

	assert.NoError(t, err)
	assert.Equal(t, 6, quote.TotalPages)
	assert.Equal(t, 747.0, quote.FinalPrice)
}
