// Package convert provides the text converters a copy policy applies to
// property values: date, SQL date, time of day, timestamp and decimal number
// converters, plus Func for caller supplied conversions.
//
// A converter parses text into a typed value and formats typed values back
// to text. Accepts reports whether the converter handles a target type; copy
// policies scan typed converters in registration order and use the first
// one that accepts.
//
// Patterns are Go reference layouts ("2006-01-02") unless they contain a '%',
// in which case they are read as strftime specifications ("%Y-%m-%d").
package convert
