package primitive

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var (
	ErrNotCoercible = errors.New("value is not coercible")
	ErrOverflow     = errors.New("value overflows destination type")
	ErrInvalidEnum  = errors.New("value is not a valid enum member")
)

var validatorType = reflect.TypeFor[interface{ IsValid() bool }]()

// Coerce converts v into a value of type dst when the pair of primitive kinds
// is permitted by allowed. A zero reflect.Value yields the zero value of dst.
func Coerce(v reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Zero(dst), nil
	}

	if v.Type() == dst {
		return v, nil
	}

	from, to := FromReflectType(v.Type()), FromReflectType(dst)
	if from == 0 || to == 0 || !Allowed(from, to, allowed) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotCoercible, v.Type(), dst)
	}

	out, err := coerce(v, from, to, dst)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("coerce %s to %s: %w", v.Type(), dst, err)
	}

	if to == KindPrimitiveEnum && dst.Implements(validatorType) && !out.Interface().(interface{ IsValid() bool }).IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %v is not a %s", ErrInvalidEnum, v.Interface(), dst)
	}

	return out, nil
}

func coerce(v reflect.Value, from, to KindEnum, dst reflect.Type) (reflect.Value, error) {
	switch {
	case to.IsSigned():
		n, err := toInt64(v, from)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(dst).Elem()
		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d", ErrOverflow, n)
		}
		out.SetInt(n)
		return out, nil

	case to.IsUnsigned():
		n, err := cast.ToUint64E(plain(v, from))
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(dst).Elem()
		if out.OverflowUint(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d", ErrOverflow, n)
		}
		out.SetUint(n)
		return out, nil

	case to.IsFloat():
		var f float64
		var err error
		if from == KindDuration {
			f = time.Duration(v.Int()).Seconds()
		} else {
			f, err = cast.ToFloat64E(plain(v, from))
		}
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(dst).Elem()
		if out.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%w: %g", ErrOverflow, f)
		}
		out.SetFloat(f)
		return out, nil

	case to == KindBool:
		b, err := toBool(v, from)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b).Convert(dst), nil

	case to == KindString:
		s, err := toString(v, from)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s).Convert(dst), nil

	case to == KindTime:
		if from == KindString {
			t, err := time.Parse(time.RFC3339Nano, v.String())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(t), nil
		}
		n, err := toInt64(v, from)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(time.Unix(n, 0).UTC()), nil

	case to == KindDuration:
		if from.IsFloat() {
			return reflect.ValueOf(time.Duration(v.Float() * float64(time.Second))), nil
		}
		d, err := cast.ToDurationE(plain(v, from))
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(d), nil

	case to == KindPrimitiveEnum:
		return toEnum(v, from, dst)
	}

	return reflect.Value{}, ErrNotCoercible
}

// plain unwraps named kinds so cast sees builtin types.
func plain(v reflect.Value, from KindEnum) any {
	switch {
	case from == KindTime:
		return v.Interface().(time.Time).Unix()
	case from == KindDuration:
		return v.Int()
	case v.CanInt():
		return v.Int()
	case v.CanUint():
		return v.Uint()
	case v.CanFloat():
		return v.Float()
	case v.Kind() == reflect.Bool:
		return v.Bool()
	case v.Kind() == reflect.String:
		return strings.TrimSpace(v.String())
	}

	return v.Interface()
}

// toInt64 truncates floats; the pair was already checked against the allowed categories.
func toInt64(v reflect.Value, from KindEnum) (int64, error) {
	return cast.ToInt64E(plain(v, from))
}

func toBool(v reflect.Value, from KindEnum) (bool, error) {
	if from != KindString {
		return cast.ToBoolE(plain(v, from))
	}

	switch strings.ToLower(strings.TrimSpace(v.String())) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off", "":
		return false, nil
	}

	return strconv.ParseBool(strings.TrimSpace(v.String()))
}

func toString(v reflect.Value, from KindEnum) (string, error) {
	switch from {
	case KindTime:
		return v.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case KindDuration:
		return time.Duration(v.Int()).String(), nil
	case KindPrimitiveEnum:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), nil
		}
	}

	return cast.ToStringE(plain(v, from))
}

func toEnum(v reflect.Value, from KindEnum, dst reflect.Type) (reflect.Value, error) {
	if dst.Kind() == reflect.String {
		s, err := toString(v, from)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(s).Convert(dst), nil
	}

	if from == KindPrimitiveEnum && v.Kind() != reflect.String {
		return v.Convert(dst), nil
	}

	out := reflect.New(dst).Elem()
	if out.CanInt() {
		n, err := cast.ToInt64E(plain(v, from))
		if err != nil {
			return reflect.Value{}, err
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d", ErrOverflow, n)
		}
		out.SetInt(n)
		return out, nil
	}

	n, err := cast.ToUint64E(plain(v, from))
	if err != nil {
		return reflect.Value{}, err
	}
	if out.OverflowUint(n) {
		return reflect.Value{}, fmt.Errorf("%w: %d", ErrOverflow, n)
	}
	out.SetUint(n)

	return out, nil
}
