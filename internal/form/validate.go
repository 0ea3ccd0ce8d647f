// Package form holds the per-entity form controllers: each owns a draft,
// validates it locally, and submits it through the remote client. Invalid
// drafts never reach the network; failed submissions preserve the draft so
// the user can retry.
package form

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalidDraft is returned by Submit when local validation fails; the
// field-level details are on the form's Errors.
var ErrInvalidDraft = errors.New("form: draft failed validation")

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}
