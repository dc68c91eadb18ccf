package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/quote-service/internal/domain/model"
)

var validPricingModes = map[string]struct{}{
	model.ModeFlat:      {},
	model.ModePerKm:     {},
	model.ModePerMinute: {},
	model.ModePerMin:    {},
	model.ModeHybrid:    {},
	model.ModeTiered:    {},
}

var validCurrencies = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "CAD": {}, "AUD": {}, "CHF": {}, "BRL": {},
}

// RegisterValidators registers the custom binding validators with gin's
// validator engine. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("pricing_mode", func(fl validator.FieldLevel) bool {
		_, ok := validPricingModes[fl.Field().String()]
		return ok
	}); err != nil {
		return err
	}

	return v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		_, ok := validCurrencies[fl.Field().String()]
		return ok
	})
}
