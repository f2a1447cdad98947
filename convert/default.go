package convert

import "reflect"

var (
	defaultDate      = &DateConverter{pattern{source: DefaultDatePattern, layout: DefaultDatePattern}}
	defaultSQLDate   = &SQLDateConverter{pattern{source: DefaultSQLDatePattern, layout: DefaultSQLDatePattern}}
	defaultTime      = &TimeConverter{pattern{source: DefaultTimePattern, layout: DefaultTimePattern}}
	defaultTimestamp = &TimestampConverter{pattern{source: DefaultTimestampPattern, layout: DefaultTimestampPattern}}
)

// Default returns the built-in converter for t, or nil when there is none.
// Date gets the SQL date converter, TimeOfDay the time converter, Timestamp
// the timestamp converter, time.Time the date
// converter, and decimal.Decimal a plain decimal converter.
func Default(t reflect.Type) Converter {
	t = deref(t)
	if t == nil {
		return nil
	}

	switch {
	case t == dateType:
		return defaultSQLDate
	case t == timeOfDayType:
		return defaultTime
	case t == timestampType:
		return defaultTimestamp
	case t == timeType:
		return defaultDate
	case t == decimalType:
		return plainNumber{}
	default:
		return nil
	}
}
