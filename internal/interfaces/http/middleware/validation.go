package middleware

import (
	"reflect"
	"strings"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator registers the bank-specific validation tags on gin's
// binding validator and switches error messages to JSON field names.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("acctnumber", validAccountNumber); err != nil {
		return err
	}
	return v.RegisterValidation("cardnumber", validCardNumber)
}

// validAccountNumber accepts account numbers in the generated format:
// the fixed prefix followed by the fixed-width digit sequence.
func validAccountNumber(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if !strings.HasPrefix(number, bank.AccountNumberPrefix) {
		return false
	}
	return allDigits(strings.TrimPrefix(number, bank.AccountNumberPrefix), bank.AccountNumberDigits)
}

// validCardNumber accepts 16-digit card numbers
func validCardNumber(fl validator.FieldLevel) bool {
	return allDigits(fl.Field().String(), bank.CardNumberDigits)
}

func allDigits(s string, width int) bool {
	if len(s) != width {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
