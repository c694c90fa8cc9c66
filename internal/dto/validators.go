package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// reasonCodePattern matches the SCREAMING_SNAKE_CASE codes used throughout
// the decision pipeline.
var reasonCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// RegisterValidations installs the custom binding validators used by the DTOs
// on Gin's validator engine. Call once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("reasoncode", validReasonCode)
	}
}

func validReasonCode(fl validator.FieldLevel) bool {
	return reasonCodePattern.MatchString(fl.Field().String())
}
