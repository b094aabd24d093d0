package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string  `validate:"required"`
	Email string  `validate:"omitempty,email"`
	Price float64 `validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "Blue Lagoon"}))

	errs := Validate(sample{Email: "nope", Price: -1})
	assert.Equal(t, map[string]string{
		"Name":  "required",
		"Email": "email",
		"Price": "gte",
	}, errs)
}
