// Package beancopy copies property values between beans and string keyed
// maps.
//
// A Copier walks the readable properties of a source bean, or the entries of
// a source Map in order, and writes each accepted value to the destination.
// A Policy decides which names take part, which values are suppressed, how
// names are rewritten between the bean and map forms and which converter
// turns a value into its destination form:
//
//	p := beancopy.NewPolicy().
//		Exclude("password").
//		ExcludeBlank().
//		BeanDelimiter('_').
//		DateConverter("2006-01-02", "born")
//
//	m, err := beancopy.BeanToNewMap(&rec, p)
//
// Every direction shares one traversal. Names a destination cannot take are
// skipped silently; conversion failures and policy errors abort the call.
package beancopy
