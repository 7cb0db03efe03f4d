package discovery

import (
	"reflect"

	"go.trai.ch/automap/internal/core/domain"
	"go.trai.ch/zerr"
)

// convert turns value into a reflect.Value assignable to to. Assignable values
// pass through, numbers convert between numeric kinds, strings and bools
// convert between named types of the same kind, and nil becomes the zero value.
func convert(value any, to reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(to), nil
	}

	v := reflect.ValueOf(value)
	from := v.Type()

	switch {
	case from.AssignableTo(to):
		return v, nil
	case isNumeric(from.Kind()) && isNumeric(to.Kind()):
		return v.Convert(to), nil
	case from.Kind() == to.Kind() && (to.Kind() == reflect.String || to.Kind() == reflect.Bool):
		return v.Convert(to), nil
	}

	return reflect.Value{}, zerr.With(zerr.With(domain.ErrIncompatibleType, "from", from.String()), "to", to.String())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
