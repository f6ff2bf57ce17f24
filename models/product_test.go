package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductValidate(t *testing.T) {
	valid := Product{Name: "Caneca", Price: decimal.RequireFromString("29.90"), Stock: 10}
	assert.NoError(t, valid.Validate())

	t.Run("zero stock is allowed", func(t *testing.T) {
		p := valid
		p.Stock = 0
		assert.NoError(t, p.Validate())
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		p := valid
		p.Stock = -1

		err := p.Validate()
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "stock", validationErr.Field)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		p := valid
		p.Price = decimal.RequireFromString("-0.01")
		assert.Error(t, p.Validate())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		p := valid
		p.Name = ""
		assert.Error(t, p.Validate())
	})
}
