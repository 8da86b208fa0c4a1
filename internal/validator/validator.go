// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Journal dates are stored as plain strings, so the only check worth
// doing at the boundary is the YYYY-MM-DD shape.
var tradeDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("trade_date", validateTradeDate)
	}
}

func validateTradeDate(fl validator.FieldLevel) bool {
	return tradeDateRegex.MatchString(fl.Field().String())
}
