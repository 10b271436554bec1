// Package validation builds the request validator with the custom rules
// shared across controllers.
package validation

import (
	"github.com/go-playground/validator/v10"

	"courtly/internal/slots"
)

// New returns a validator with the hhmm rule registered. hhmm accepts
// whole-hour clock times such as "14:00" and rejects off-grid values.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return slots.OnHourGrid(fl.Field().String())
	})
	return v
}
