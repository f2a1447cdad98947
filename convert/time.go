package convert

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	beanerrors "beanmapper/errors"
)

// Default patterns of the built-in date-like converters.
const (
	DefaultDatePattern      = time.RFC3339Nano
	DefaultSQLDatePattern   = time.DateOnly
	DefaultTimePattern      = time.TimeOnly
	DefaultTimestampPattern = "2006-01-02 15:04:05.999999999"
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	dateType      = reflect.TypeFor[Date]()
	timeOfDayType = reflect.TypeFor[TimeOfDay]()
	timestampType = reflect.TypeFor[Timestamp]()
)

// pattern is a compiled date/time layout.
type pattern struct {
	source   string
	layout   string
	strftime bool
}

func compilePattern(p string) (pattern, error) {
	if p == "" {
		return pattern{}, beanerrors.NewInvalidArgumentError("pattern", "converter pattern is empty")
	}

	if !strings.Contains(p, "%") {
		return pattern{source: p, layout: p}, nil
	}

	layout, err := strftime.Layout(p)
	if err != nil {
		return pattern{}, beanerrors.NewInvalidArgumentError("pattern", fmt.Sprintf("%q: %v", p, err))
	}

	return pattern{source: p, layout: layout, strftime: true}, nil
}

// Pattern returns the pattern the converter was created with.
func (p pattern) Pattern() string { return p.source }

func (p pattern) parse(text string) (time.Time, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false, nil
	}

	t, err := time.ParseInLocation(p.layout, text, time.UTC)
	if err != nil {
		return time.Time{}, false, err
	}

	return t, true, nil
}

func (p pattern) format(name string, value any) (string, error) {
	t, ok := timeOf(value)
	if !ok {
		return "", &UnsupportedValueError{Converter: name, Value: value}
	}

	if p.strftime {
		return strftime.Format(p.source, t), nil
	}

	return t.Format(p.layout), nil
}

// DateConverter converts between text and time.Time.
type DateConverter struct{ pattern }

// NewDateConverter returns a converter using p, a Go layout or strftime pattern.
func NewDateConverter(p string) (*DateConverter, error) {
	compiled, err := compilePattern(p)
	if err != nil {
		return nil, err
	}

	return &DateConverter{compiled}, nil
}

func (c *DateConverter) Parse(text string, _ reflect.Type) (any, error) {
	t, ok, err := c.parse(text)
	if !ok || err != nil {
		return nil, err
	}

	return t, nil
}

func (c *DateConverter) Format(value any) (string, error) { return c.format("date", value) }

func (c *DateConverter) Accepts(t reflect.Type) bool { return deref(t) == timeType }

// SQLDateConverter converts between text and Date.
type SQLDateConverter struct{ pattern }

// NewSQLDateConverter returns a converter using p, a Go layout or strftime pattern.
func NewSQLDateConverter(p string) (*SQLDateConverter, error) {
	compiled, err := compilePattern(p)
	if err != nil {
		return nil, err
	}

	return &SQLDateConverter{compiled}, nil
}

func (c *SQLDateConverter) Parse(text string, _ reflect.Type) (any, error) {
	t, ok, err := c.parse(text)
	if !ok || err != nil {
		return nil, err
	}

	return DateOf(t), nil
}

func (c *SQLDateConverter) Format(value any) (string, error) { return c.format("sql date", value) }

func (c *SQLDateConverter) Accepts(t reflect.Type) bool { return deref(t) == dateType }

// TimeConverter converts between text and TimeOfDay.
type TimeConverter struct{ pattern }

// NewTimeConverter returns a converter using p, a Go layout or strftime pattern.
func NewTimeConverter(p string) (*TimeConverter, error) {
	compiled, err := compilePattern(p)
	if err != nil {
		return nil, err
	}

	return &TimeConverter{compiled}, nil
}

func (c *TimeConverter) Parse(text string, _ reflect.Type) (any, error) {
	t, ok, err := c.parse(text)
	if !ok || err != nil {
		return nil, err
	}

	return TimeOfDayOf(t), nil
}

func (c *TimeConverter) Format(value any) (string, error) { return c.format("time", value) }

func (c *TimeConverter) Accepts(t reflect.Type) bool { return deref(t) == timeOfDayType }

// TimestampConverter converts between text and Timestamp.
type TimestampConverter struct{ pattern }

// NewTimestampConverter returns a converter using p, a Go layout or strftime pattern.
func NewTimestampConverter(p string) (*TimestampConverter, error) {
	compiled, err := compilePattern(p)
	if err != nil {
		return nil, err
	}

	return &TimestampConverter{compiled}, nil
}

func (c *TimestampConverter) Parse(text string, _ reflect.Type) (any, error) {
	t, ok, err := c.parse(text)
	if !ok || err != nil {
		return nil, err
	}

	return TimestampOf(t), nil
}

func (c *TimestampConverter) Format(value any) (string, error) { return c.format("timestamp", value) }

func (c *TimestampConverter) Accepts(t reflect.Type) bool { return deref(t) == timestampType }
