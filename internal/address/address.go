package address

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/types"
)

// requiredMessages is keyed by the JSON field name.
var requiredMessages = map[string]string{
	"full_name": "Full name is required",
	"phone":     "Phone number is required",
	"street":    "Street address is required",
	"city":      "City is required",
	"state":     "State is required",
	"zip":       "ZIP code is required",
	"country":   "Country is required",
}

// fieldOrder is the order fields appear on the address form.
var fieldOrder = []string{"full_name", "phone", "street", "city", "state", "zip", "country"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate trims every field and checks the required ones. The trimmed address
// is returned even when validation fails so forms can be re-rendered with it.
func Validate(in types.Address) (types.Address, error) {
	addr := in.Trimmed()
	err := validate.Struct(addr)
	if err == nil {
		return addr, nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return addr, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid address")
	}
	fields := pkgerrors.FieldErrors{}
	for _, fe := range errs {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			fields[fe.Field()] = msg
		}
	}
	return addr, pkgerrors.Fields(FirstMessage(fields), fields)
}

// FirstMessage picks the message for the earliest failing field in form order.
func FirstMessage(fields pkgerrors.FieldErrors) string {
	for _, name := range fieldOrder {
		if msg, ok := fields[name]; ok {
			return msg
		}
	}
	return "validation failed"
}
