package convert

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	beanerrors "beanmapper/errors"
)

var decimalType = reflect.TypeFor[decimal.Decimal]()

// NumberConverter converts between text and numbers using a humanize
// pattern such as "#,###.##": the last separator is the decimal mark, the
// one before it the grouping mark, and the count of '#' after the decimal
// mark the precision.
//
// Text is parsed exactly into a decimal.Decimal and then narrowed to the
// target type; formatting goes through float64.
type NumberConverter struct {
	pattern string
	group   rune
	mark    rune
}

// NewNumberConverter returns a converter using the humanize pattern p.
func NewNumberConverter(p string) (*NumberConverter, error) {
	if p == "" {
		return nil, beanerrors.NewInvalidArgumentError("pattern", "converter pattern is empty")
	}

	c := &NumberConverter{pattern: p}

	var seps []rune
	for _, r := range p {
		if r != '#' && r != '+' && r != '-' {
			seps = append(seps, r)
		}
	}

	switch len(seps) {
	case 0:
	case 1:
		c.mark = seps[0]
	default:
		c.group, c.mark = seps[len(seps)-2], seps[len(seps)-1]
	}

	return c, nil
}

// Pattern returns the pattern the converter was created with.
func (c *NumberConverter) Pattern() string { return c.pattern }

func (c *NumberConverter) Parse(text string, target reflect.Type) (any, error) {
	d, ok, err := c.decimal(text)
	if !ok || err != nil {
		return nil, err
	}

	return narrow(d, target)
}

func (c *NumberConverter) decimal(text string) (decimal.Decimal, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, false, nil
	}

	if c.group != 0 {
		text = strings.ReplaceAll(text, string(c.group), "")
	}
	if c.mark != 0 && c.mark != '.' {
		text = strings.ReplaceAll(text, string(c.mark), ".")
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	return d, true, nil
}

func (c *NumberConverter) Format(value any) (string, error) {
	d, ok := decimalOf(value)
	if !ok {
		return "", &UnsupportedValueError{Converter: "number", Value: value}
	}

	return humanize.FormatFloat(c.pattern, d.InexactFloat64()), nil
}

func (c *NumberConverter) Accepts(t reflect.Type) bool { return isNumber(deref(t)) }

// plainNumber is the default decimal converter: canonical decimal text.
type plainNumber struct{}

func (plainNumber) Parse(text string, target reflect.Type) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, err
	}

	return narrow(d, target)
}

func (plainNumber) Format(value any) (string, error) {
	d, ok := decimalOf(value)
	if !ok {
		return "", &UnsupportedValueError{Converter: "number", Value: value}
	}

	return d.String(), nil
}

func (plainNumber) Accepts(t reflect.Type) bool { return deref(t) == decimalType }

func isNumber(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t == decimalType {
		return true
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// narrow converts d into a value of target. A nil target keeps the decimal.
func narrow(d decimal.Decimal, target reflect.Type) (any, error) {
	t := deref(target)
	if t == nil || t == decimalType {
		return d, nil
	}

	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !d.IsInteger() || !d.BigInt().IsInt64() || out.OverflowInt(d.IntPart()) {
			return nil, fmt.Errorf("%s does not fit %s", d, t)
		}
		out.SetInt(d.IntPart())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !d.IsInteger() || d.IsNegative() || !d.BigInt().IsUint64() || out.OverflowUint(d.BigInt().Uint64()) {
			return nil, fmt.Errorf("%s does not fit %s", d, t)
		}
		out.SetUint(d.BigInt().Uint64())

	case reflect.Float32, reflect.Float64:
		out.SetFloat(d.InexactFloat64())

	case reflect.String:
		out.SetString(d.String())

	default:
		return nil, fmt.Errorf("cannot parse a number into %s", t)
	}

	return out.Interface(), nil
}

func decimalOf(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v != nil {
			return *v, true
		}
		return decimal.Decimal{}, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch {
	case rv.CanInt():
		return decimal.NewFromInt(rv.Int()), true
	case rv.CanUint():
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), true
	case rv.CanFloat():
		return decimal.NewFromFloat(rv.Float()), true
	default:
		return decimal.Decimal{}, false
	}
}
