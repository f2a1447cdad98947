package bean

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	beanerrors "beanmapper/errors"
	"beanmapper/internal/match"
)

var errorType = reflect.TypeFor[error]()

// Method is an exported method of the *T method set.
type Method struct {
	name  string
	index int
	typ   reflect.Type // func type without the receiver
	owner reflect.Type
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Type returns the method's func type, receiver excluded.
func (m *Method) Type() reflect.Type { return m.typ }

// String returns the method signature, e.g. "Greet(string, ...string) string".
func (m *Method) String() string {
	return m.name + strings.TrimPrefix(m.typ.String(), "func")
}

func (m *Method) signature() match.Signature {
	return signatureOf(m.String(), m.typ)
}

// Call invokes the method on recv, which must be a pointer to or a value of
// the owning struct, converting args as best-fit selection does.
func (m *Method) Call(recv any, args ...any) ([]any, error) {
	rv := reflect.ValueOf(recv)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Type() != m.owner {
		return nil, beanerrors.NewInvalidArgumentError("recv",
			fmt.Sprintf("%s is not a %s", typeName(rv), m.owner))
	}

	values := argValues(args)

	sig := m.signature()
	ranked := match.RankSignatures([]match.Signature{sig}, values)
	best, ok := ranked.Best()
	if !ok {
		return nil, beanerrors.NewNoMatchError(m.name, argStrings(values)...)
	}

	fn := addressable(rv).Addr().Method(m.index)

	return interfaces(call(fn, sig, values, best.Expanded)), nil
}

// Initializer creates new beans of one struct type.
type Initializer struct {
	label    string
	fn       reflect.Value // invalid for the implicit zero-value initializer
	typ      reflect.Type
	owner    reflect.Type
	pointer  bool // fn returns *T
	hasError bool
}

// Label returns the constructor name ("store.NewCustomer") or "zero value".
func (i *Initializer) Label() string { return i.label }

// Implicit reports whether this is the zero-value initializer.
func (i *Initializer) Implicit() bool { return !i.fn.IsValid() }

// Type returns the constructor's func type, nil for the implicit initializer.
func (i *Initializer) Type() reflect.Type { return i.typ }

func (i *Initializer) signature() match.Signature {
	if i.Implicit() {
		return match.Signature{Label: i.label, Implicit: true}
	}

	return signatureOf(i.label, i.typ)
}

// New calls the initializer and returns a pointer to the new bean.
func (i *Initializer) New(args ...any) (any, error) {
	values := argValues(args)

	if i.Implicit() {
		if len(values) != 0 {
			return nil, beanerrors.NewNoMatchError(i.label, argStrings(values)...)
		}
		return reflect.New(i.owner).Interface(), nil
	}

	sig := i.signature()
	best, ok := match.RankSignatures([]match.Signature{sig}, values).Best()
	if !ok {
		return nil, beanerrors.NewNoMatchError(i.label, argStrings(values)...)
	}

	return i.finish(call(i.fn, sig, values, best.Expanded))
}

func (i *Initializer) finish(out []reflect.Value) (any, error) {
	if i.hasError && !out[1].IsNil() {
		return nil, fmt.Errorf("%s: %w", i.label, out[1].Interface().(error))
	}

	v := out[0]
	if !i.pointer {
		ptr := reflect.New(i.owner)
		ptr.Elem().Set(v)
		return ptr.Interface(), nil
	}

	if v.IsNil() {
		return nil, fmt.Errorf("%s: %w", i.label, errNilBean)
	}

	return v.Interface(), nil
}

var errNilBean = errors.New("initializer returned a nil bean")

// parseInitializer accepts func(...) T, func(...) *T and func(...) (*T, error)
// with T a struct type.
func parseInitializer(fn any) (*Initializer, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, beanerrors.NewInvalidArgumentError("initializer",
			fmt.Sprintf("%s is not a function", typeName(fv)))
	}

	ft := fv.Type()
	if ft.NumOut() == 0 || ft.NumOut() > 2 || (ft.NumOut() == 2 && ft.Out(1) != errorType) {
		return nil, beanerrors.NewInvalidArgumentError("initializer",
			fmt.Sprintf("%s must return T, *T or (*T, error)", ft))
	}

	init := &Initializer{
		label:    funcLabel(fv),
		fn:       fv,
		typ:      ft,
		owner:    ft.Out(0),
		hasError: ft.NumOut() == 2,
	}

	if init.owner.Kind() == reflect.Pointer {
		init.owner = init.owner.Elem()
		init.pointer = true
	}

	if init.owner.Kind() != reflect.Struct {
		return nil, beanerrors.NewInvalidArgumentError("initializer",
			fmt.Sprintf("%s does not build a struct", ft))
	}

	return init, nil
}

// funcLabel returns "pkg.Func" for a function value.
func funcLabel(fv reflect.Value) string {
	fn := runtime.FuncForPC(fv.Pointer())
	if fn == nil {
		return fv.Type().String()
	}

	// "beanmapper/store.NewCustomer" -> "store.NewCustomer"
	_, name := path.Split(fn.Name())

	return name
}

func signatureOf(label string, ft reflect.Type) match.Signature {
	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}

	return match.Signature{
		Label:    label,
		Params:   params,
		Variadic: ft.IsVariadic(),
	}
}

// call converts values to the parameter types of sig and calls fn.
func call(fn reflect.Value, sig match.Signature, values []reflect.Value, expanded bool) []reflect.Value {
	params := sig.Params
	if expanded {
		n := len(sig.Params)
		params = append([]reflect.Type(nil), sig.Params[:n-1]...)
		for range len(values) - (n - 1) {
			params = append(params, sig.Params[n-1].Elem())
		}
	}

	in := make([]reflect.Value, len(values))
	for i, v := range values {
		in[i] = convertArg(v, params[i])
	}

	if sig.Variadic && !expanded {
		return fn.CallSlice(in)
	}

	return fn.Call(in)
}

func convertArg(v reflect.Value, param reflect.Type) reflect.Value {
	switch {
	case !v.IsValid():
		return reflect.Zero(param)
	case v.Type().AssignableTo(param):
		return v
	default:
		return v.Convert(param)
	}
}

func argValues(args []any) []reflect.Value {
	values := make([]reflect.Value, len(args))
	for i, a := range args {
		values[i] = reflect.ValueOf(a)
	}

	return values
}

func argStrings(values []reflect.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = typeName(v)
	}

	return out
}

func interfaces(values []reflect.Value) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Interface()
	}

	return out
}
