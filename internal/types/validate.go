package types

import "github.com/go-playground/validator/v10"

// Validate validates the CustomizationOptions using the validator.
func (o *CustomizationOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
