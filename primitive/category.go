package primitive

import (
	"fmt"
	"strings"
)

// CategoryEnum is a bit set of coercion families a bean writer may apply
// when a value is not directly assignable to a destination property.
type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: named string and integer types

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryDefault is applied by the copy engine unless a policy overrides it.
	CategoryDefault = CategorySafeNumber | CategoryUnsafeNumber | CategoryTextNumber |
		CategoryTextualBool | CategoryDuration | CategoryEnumString
)

var categoryNames = []struct {
	name string
	cat  CategoryEnum
}{
	{"safe_number", CategorySafeNumber},
	{"unsafe_number", CategoryUnsafeNumber},
	{"text_number", CategoryTextNumber},
	{"numeric_bool", CategoryNumericBool},
	{"textual_bool", CategoryTextualBool},
	{"datetime", CategoryDatetime},
	{"timestamp", CategoryTimestamp},
	{"duration", CategoryDuration},
	{"nanoseconds", CategoryNanoseconds},
	{"seconds", CategorySeconds},
	{"enum_string", CategoryEnumString},
}

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = map[CategoryEnum]map[ConversionPair]struct{}{
		CategorySafeNumber:   safeNumberConversionPairs(),
		CategoryTextNumber:   {},
		CategoryNumericBool:  {},
		CategoryTimestamp:    {},
		CategoryNanoseconds:  {},
		CategoryUnsafeNumber: {},
		CategoryTextualBool: {
			{KindString, KindBool}: {},
			{KindBool, KindString}: {},
		},
		CategoryDatetime: {
			{KindString, KindTime}: {},
			{KindTime, KindString}: {},
		},
		CategoryDuration: {
			{KindString, KindDuration}: {},
			{KindDuration, KindString}: {},
		},
		CategorySeconds: {
			{KindFloat32, KindDuration}: {},
			{KindFloat64, KindDuration}: {},
			{KindDuration, KindFloat32}: {},
			{KindDuration, KindFloat64}: {},
		},
		CategoryEnumString: {
			{KindString, KindPrimitiveEnum}:        {},
			{KindPrimitiveEnum, KindString}:        {},
			{KindPrimitiveEnum, KindPrimitiveEnum}: {},
		},
	}

	safe := conversionPairs[CategorySafeNumber]

	for from := KindEnum(1); int(from) < KindTotal; from++ {
		if !from.IsNumber() {
			continue
		}

		conversionPairs[CategoryTextNumber][ConversionPair{from, KindString}] = struct{}{}
		conversionPairs[CategoryTextNumber][ConversionPair{KindString, from}] = struct{}{}

		for to := KindEnum(1); int(to) < KindTotal; to++ {
			pair := ConversionPair{from, to}
			if _, ok := safe[pair]; !ok && to.IsNumber() {
				conversionPairs[CategoryUnsafeNumber][pair] = struct{}{}
			}
		}

		if !from.IsInteger() {
			continue
		}

		conversionPairs[CategoryNumericBool][ConversionPair{from, KindBool}] = struct{}{}
		conversionPairs[CategoryNumericBool][ConversionPair{KindBool, from}] = struct{}{}
		conversionPairs[CategoryTimestamp][ConversionPair{from, KindTime}] = struct{}{}
		conversionPairs[CategoryTimestamp][ConversionPair{KindTime, from}] = struct{}{}

		if from != KindUint64 {
			conversionPairs[CategoryNanoseconds][ConversionPair{from, KindDuration}] = struct{}{}
			conversionPairs[CategoryNanoseconds][ConversionPair{KindDuration, from}] = struct{}{}
		}
	}
}

// Allowed reports whether any category in allowed permits converting from into to.
func Allowed(from, to KindEnum, allowed CategoryEnum) bool {
	pair := ConversionPair{from, to}

	for cat, pairs := range conversionPairs {
		if allowed&cat == 0 {
			continue
		}

		if _, ok := pairs[pair]; ok {
			return true
		}
	}

	return false
}

// ParseCategory resolves a snake_case category name, "all" or "none".
func ParseCategory(name string) (CategoryEnum, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "all":
		return CategoryAll, nil
	case "none":
		return CategoryNone, nil
	case "default":
		return CategoryDefault, nil
	}

	for _, cn := range categoryNames {
		if cn.name == name {
			return cn.cat, nil
		}
	}

	return CategoryNone, fmt.Errorf("unknown coercion category %q", name)
}

// CategoryNames returns every name ParseCategory accepts.
func CategoryNames() []string {
	names := []string{"all", "none", "default"}
	for _, cn := range categoryNames {
		names = append(names, cn.name)
	}

	return names
}

// String lists the category names set in c, joined by "|".
func (c CategoryEnum) String() string {
	if c == CategoryNone {
		return "none"
	}

	var names []string
	for _, cn := range categoryNames {
		if c&cn.cat != 0 {
			names = append(names, cn.name)
		}
	}

	return strings.Join(names, "|")
}

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {},
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {},
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {},

		{KindUint, KindUint}:   {},
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {},
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {},
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {},
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {},
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {},
		{KindUint32, KindInt64}:   {}, // only int64 is wide enough to hold uint32
		{KindUint32, KindFloat64}: {},

		{KindUint64, KindUint64}: {},

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},
	}
}
