// Package profile declares copy policies in YAML.
//
// A profile file names one or more policies:
//
//	version: "1"
//	profiles:
//	  - name: export
//	    include: [name, count, born]
//	    exclude_blank: true
//	    bean_delimiter: "_"
//	    map_delimiter: "."
//	    coercions: [default, datetime]
//	    converters:
//	      - type: date
//	        pattern: "%Y-%m-%d"
//	        properties: [born]
//	      - type: number
//	        pattern: "#,###.##"
//
// Converter types are date, sql_date, time, timestamp and number. A converter
// without properties is a typed converter; typed converters are tried in the
// order they are listed. Coercions take primitive category names, "default",
// "all" or "none".
//
// Validate reports every problem of a file as diagnostics; Policy builds the
// beancopy.Policy of one profile.
package profile
