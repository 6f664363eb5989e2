package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding validations used by the
// request DTOs on gin's validator engine. Call once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("ssn", validSSN)
	v.RegisterValidation("pin", validPIN)
}

// validSSN accepts exactly nine digits.
func validSSN(fl validator.FieldLevel) bool {
	return allDigits(fl.Field().String(), 9)
}

// validPIN accepts exactly four digits.
func validPIN(fl validator.FieldLevel) bool {
	return allDigits(fl.Field().String(), 4)
}

func allDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
