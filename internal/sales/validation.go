package sales

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so violations match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Let numeric tags such as gt=0 apply to decimal amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()
		return f
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Validate checks a sale candidate and returns a *ValidationError holding
// every violation, or nil when the sale is valid. It does not modify sale.
func Validate(sale *Sale) error {
	err := validate.Struct(sale)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fieldPath(fe.Namespace()),
			Message: violationMessage(fe),
		})
	}
	return &ValidationError{Violations: violations}
}

// fieldPath drops the root struct name: "Sale.products[0].name" -> "products[0].name".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "must not be empty"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
