package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DisplayColors are the named colors a grid cell can be drawn with. Hex colors (#rgb, #rrggbb)
// are accepted as well.
var DisplayColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"purple": true,
	"yellow": true,
	"red":    true,
	"orange": true,
	"black":  true,
	"brown":  true,
}

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterRules(validate); err != nil {
		panic(err)
	}
}

// RegisterRules adds the custom tags used across the module to v.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation("displaycolor", isDisplayColor)
}

func isDisplayColor(fl validator.FieldLevel) bool {
	color := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if DisplayColors[color] {
		return true
	}
	return validate.Var(color, "hexcolor") == nil
}

func GetValidator() *validator.Validate {
	return validate
}
