package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewCustomValidator wraps go-playground/validator for echo request binding
func NewCustomValidator(v *validator.Validate) echo.Validator {
	registerMoneyRules(v)
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// registerMoneyRules adds the money-amount rule used by bid and buy-now
// payloads: two decimal places at most, strictly positive.
func registerMoneyRules(v *validator.Validate) {
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		amount := fl.Field().Float()
		if amount <= 0 {
			return false
		}
		cents := amount * 100
		return cents == float64(int64(cents))
	})
}
