package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerCustomValidators installs binding rules for decimal fields on gin's
// validator engine. The standard numeric comparators (gte, gt) do not apply to
// decimal.Decimal, so monetary amounts get a dedicated rule instead.
func registerCustomValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(decimal.Decimal)
			if !ok {
				return false
			}
			return !d.IsNegative()
		})
	})
}
