package beancopy

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"strings"

	"beanmapper/convert"
	beanerrors "beanmapper/errors"
	"beanmapper/internal/common"
	"beanmapper/primitive"
)

// Default nesting separators.
const (
	DefaultBeanDelimiter = '$'
	DefaultMapDelimiter  = '.'
)

// Policy configures one or more copy calls. Builder methods mutate and
// return the receiver; a policy must not be changed while a copy using it
// runs. The zero value is not usable, call NewPolicy.
type Policy struct {
	include      []string
	exclude      []string
	excludeNull  bool
	excludeBlank bool
	prefix       string

	beanDelimiter rune
	mapDelimiter  rune

	named map[string]convert.Converter
	typed []convert.Converter

	coercions primitive.CategoryEnum

	err error
}

// NewPolicy returns a permissive policy: every property, every value, no
// prefix, default delimiters and default write coercions.
func NewPolicy() *Policy {
	return &Policy{
		beanDelimiter: DefaultBeanDelimiter,
		mapDelimiter:  DefaultMapDelimiter,
		named:         make(map[string]convert.Converter),
		coercions:     primitive.CategoryDefault,
	}
}

// Include restricts copying to names.
func (p *Policy) Include(names ...string) *Policy {
	p.include = append(p.include, names...)
	return p
}

// Exclude removes names from copying.
func (p *Policy) Exclude(names ...string) *Policy {
	p.exclude = append(p.exclude, names...)
	return p
}

// ExcludeNull drops nil values.
func (p *Policy) ExcludeNull() *Policy {
	p.excludeNull = true
	return p
}

// ExcludeBlank drops text values that are empty after trimming.
func (p *Policy) ExcludeBlank() *Policy {
	p.excludeBlank = true
	return p
}

// Prefix restricts copying to source names starting with prefix and strips
// it from destination names.
func (p *Policy) Prefix(prefix string) *Policy {
	p.prefix = prefix
	return p
}

// BeanDelimiter sets the nesting separator of bean property names.
func (p *Policy) BeanDelimiter(c rune) *Policy {
	p.beanDelimiter = c
	return p
}

// MapDelimiter sets the nesting separator of map keys.
func (p *Policy) MapDelimiter(c rune) *Policy {
	p.mapDelimiter = c
	return p
}

// Coercions sets the primitive coercions bean writes may apply when a value
// is not assignable to the destination property.
func (p *Policy) Coercions(allowed primitive.CategoryEnum) *Policy {
	p.coercions = allowed
	return p
}

// Converter registers conv for the destination properties names. Without
// names conv joins the typed converters, which are tried in registration
// order against the target type.
func (p *Policy) Converter(conv convert.Converter, names ...string) *Policy {
	if conv == nil || (reflect.ValueOf(conv).Kind() == reflect.Pointer && reflect.ValueOf(conv).IsNil()) {
		return p.fail(beanerrors.NewInvalidArgumentError("converter", "nil converter"))
	}

	if len(names) == 0 {
		p.typed = append(p.typed, conv)
		return p
	}

	for _, name := range names {
		p.named[name] = conv
	}

	return p
}

// DateConverter registers a time.Time converter using pattern.
func (p *Policy) DateConverter(pattern string, names ...string) *Policy {
	return register(p, convert.NewDateConverter, pattern, names)
}

// SQLDateConverter registers a convert.Date converter using pattern.
func (p *Policy) SQLDateConverter(pattern string, names ...string) *Policy {
	return register(p, convert.NewSQLDateConverter, pattern, names)
}

// TimeConverter registers a convert.TimeOfDay converter using pattern.
func (p *Policy) TimeConverter(pattern string, names ...string) *Policy {
	return register(p, convert.NewTimeConverter, pattern, names)
}

// TimestampConverter registers a convert.Timestamp converter using pattern.
func (p *Policy) TimestampConverter(pattern string, names ...string) *Policy {
	return register(p, convert.NewTimestampConverter, pattern, names)
}

// NumberConverter registers a number converter using a humanize pattern.
func (p *Policy) NumberConverter(pattern string, names ...string) *Policy {
	return register(p, convert.NewNumberConverter, pattern, names)
}

func register[C convert.Converter](p *Policy, build func(string) (C, error), pattern string, names []string) *Policy {
	conv, err := build(pattern)
	if err != nil {
		return p.fail(err)
	}

	return p.Converter(conv, names...)
}

func (p *Policy) fail(err error) *Policy {
	p.err = errors.Join(p.err, err)
	return p
}

// Err returns the configuration errors recorded by the builder methods.
func (p *Policy) Err() error { return p.err }

// IsTargetProperty reports whether the source property name takes part in
// a copy. Exclusion only overrides inclusion for names on both lists.
func (p *Policy) IsTargetProperty(name string) bool {
	if p.prefix != "" && !strings.HasPrefix(name, p.prefix) {
		return false
	}

	switch {
	case !common.IsEmpty(p.include):
		return slices.Contains(p.include, name) && !slices.Contains(p.exclude, name)
	case !common.IsEmpty(p.exclude):
		return !slices.Contains(p.exclude, name)
	default:
		return true
	}
}

// IsTargetValue reports whether value is copied.
func (p *Policy) IsTargetValue(value any) bool {
	if p.excludeNull && isNull(value) {
		return false
	}

	if p.excludeBlank {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return false
		}
	}

	return true
}

// TrimPrefix removes the configured prefix from the front of name.
func (p *Policy) TrimPrefix(name string) string {
	return strings.TrimPrefix(name, p.prefix)
}

// ToMapName rewrites a bean property name into a map key.
func (p *Policy) ToMapName(name string) string {
	return replaceDelimiter(p.TrimPrefix(name), p.beanDelimiter, p.mapDelimiter)
}

// ToBeanName rewrites a map key into a bean property name.
func (p *Policy) ToBeanName(name string) string {
	return replaceDelimiter(p.TrimPrefix(name), p.mapDelimiter, p.beanDelimiter)
}

func replaceDelimiter(name string, from, to rune) string {
	if from == to {
		return name
	}

	return strings.ReplaceAll(name, string(from), string(to))
}

// ConvertValue converts value for the destination property destName of type
// destType; destType is nil when the destination is a map.
//
// nil values and non-text values bound for a known non-text destination
// pass through. Otherwise the converter registered for destName is used,
// then the first typed converter accepting the target type (the value's
// own type, or destType for text), then convert.Default(destType). Text is
// parsed, other values are formatted. Without a converter the value passes
// through.
func (p *Policy) ConvertValue(value any, destName string, destType reflect.Type) (any, error) {
	if value == nil {
		return nil, nil
	}

	text, isText := value.(string)
	if !isText && destType != nil && !primitive.IsText(destType) {
		return value, nil
	}

	conv := p.converterFor(value, isText, destName, destType)
	if conv == nil {
		return value, nil
	}

	var (
		out any
		err error
	)
	if isText {
		out, err = conv.Parse(text, destType)
	} else {
		out, err = conv.Format(value)
	}

	if err != nil {
		return nil, beanerrors.NewConversionError(destName, value, err)
	}

	return out, nil
}

func (p *Policy) converterFor(value any, isText bool, destName string, destType reflect.Type) convert.Converter {
	if conv, ok := p.named[destName]; ok {
		return conv
	}

	target := destType
	if !isText {
		target = reflect.TypeOf(value)
	}

	if target != nil {
		for _, conv := range p.typed {
			if conv.Accepts(target) {
				return conv
			}
		}
	}

	if destType != nil {
		return convert.Default(destType)
	}

	return nil
}

// Names returns the include and exclude lists.
func (p *Policy) Names() (include, exclude []string) {
	return slices.Clone(p.include), slices.Clone(p.exclude)
}

// ConverterNames returns the property names with a registered converter.
func (p *Policy) ConverterNames() []string {
	return slices.Sorted(maps.Keys(p.named))
}

func isNull(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
