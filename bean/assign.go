package bean

import (
	"fmt"
	"reflect"

	"beanmapper/primitive"
)

type route int

const (
	routeUnknown route = iota
	routeAssign
	routeDeref
	routeAddress
	routePrimitive
	routeSlice
	routeMap
)

// dispatch picks how a value of type src reaches a slot of type dst.
func dispatch(src, dst reflect.Type) route {
	switch {
	case src.AssignableTo(dst):
		return routeAssign
	case src.Kind() == reflect.Pointer:
		return routeDeref
	case dst.Kind() == reflect.Pointer:
		return routeAddress
	case dst.Kind() == reflect.Slice && (src.Kind() == reflect.Slice || src.Kind() == reflect.Array):
		return routeSlice
	case dst.Kind() == reflect.Map && src.Kind() == reflect.Map:
		return routeMap
	case primitive.FromReflectType(src) != 0 && primitive.FromReflectType(dst) != 0:
		return routePrimitive
	default:
		return routeUnknown
	}
}

// coerceValue turns v into a value assignable to dst. Invalid values and nil
// pointers become the zero value of dst.
func coerceValue(v reflect.Value, dst reflect.Type, allowed primitive.CategoryEnum) (reflect.Value, error) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if !v.IsValid() {
		return reflect.Zero(dst), nil
	}

	switch dispatch(v.Type(), dst) {
	case routeAssign:
		return v, nil

	case routeDeref:
		if v.IsNil() {
			return reflect.Zero(dst), nil
		}
		return coerceValue(v.Elem(), dst, allowed)

	case routeAddress:
		inner, err := coerceValue(v, dst.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(dst.Elem())
		ptr.Elem().Set(inner)
		return ptr, nil

	case routeSlice:
		return coerceSlice(v, dst, allowed)

	case routeMap:
		return coerceMap(v, dst, allowed)

	case routePrimitive:
		return primitive.Coerce(v, dst, allowed)

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", primitive.ErrNotCoercible, v.Type(), dst)
	}
}

func coerceSlice(v reflect.Value, dst reflect.Type, allowed primitive.CategoryEnum) (reflect.Value, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.Zero(dst), nil
	}

	out := reflect.MakeSlice(dst, v.Len(), v.Len())
	for i := range v.Len() {
		elem, err := coerceValue(v.Index(i), dst.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		out.Index(i).Set(elem)
	}

	return out, nil
}

func coerceMap(v reflect.Value, dst reflect.Type, allowed primitive.CategoryEnum) (reflect.Value, error) {
	if v.IsNil() {
		return reflect.Zero(dst), nil
	}

	out := reflect.MakeMapWithSize(dst, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := coerceValue(iter.Key(), dst.Key(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		elem, err := coerceValue(iter.Value(), dst.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		out.SetMapIndex(key, elem)
	}

	return out, nil
}
