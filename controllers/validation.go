package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Safe to call more than once.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("decimal", decimalRule)
	}
}

// decimalRule accepts values with at most ten integer digits and two fraction
// digits. The shortest decimal rendering of the float is inspected so binary
// rounding noise does not reject values like 0.1.
func decimalRule(fl validator.FieldLevel) bool {
	rendered := strconv.FormatFloat(fl.Field().Float(), 'f', -1, 64)
	rendered = strings.TrimPrefix(rendered, "-")

	intPart, fracPart, _ := strings.Cut(rendered, ".")
	return len(intPart) <= 10 && len(fracPart) <= 2
}
