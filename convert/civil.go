package convert

import "time"

// Date is a calendar date without a time of day, the value of an SQL DATE
// column. The embedded time is midnight UTC.
type Date struct{ time.Time }

// TimeOfDay is a wall clock time without a date, the value of an SQL TIME
// column. The embedded time is on January 1 of year 0, UTC.
type TimeOfDay struct{ time.Time }

// Timestamp is a date and time of day, the value of an SQL TIMESTAMP column.
type Timestamp struct{ time.Time }

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// TimeOfDayOf returns the wall clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)}
}

// TimestampOf wraps t.
func TimestampOf(t time.Time) Timestamp { return Timestamp{t} }

func (d Date) String() string      { return d.Format(time.DateOnly) }
func (t TimeOfDay) String() string { return t.Format(time.TimeOnly) }
func (t Timestamp) String() string { return t.Format("2006-01-02 15:04:05.999999999") }

// timeOf extracts the instant held by a date-like value.
func timeOf(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	case Date:
		return v.Time, true
	case *Date:
		if v != nil {
			return v.Time, true
		}
	case TimeOfDay:
		return v.Time, true
	case *TimeOfDay:
		if v != nil {
			return v.Time, true
		}
	case Timestamp:
		return v.Time, true
	case *Timestamp:
		if v != nil {
			return v.Time, true
		}
	}

	return time.Time{}, false
}
