/*
Package errors defines the error taxonomy shared by the bean registry,
the converters and the copy engine.

Every typed error maps onto a sentinel, so callers can branch with the
standard errors.Is or with the helpers in this package:

	err := beancopy.MapToBean(src, &dst, policy)
	if errors.IsConversionFailed(err) {
	    var convErr *errors.ConversionError
	    stderrors.As(err, &convErr)
	    log.Printf("property %s rejected %v", convErr.Name, convErr.Value)
	}

Property selection never produces errors: properties that are filtered out
or missing on the destination are skipped. Conversion failures and malformed
configuration abort the whole copy call.
*/
package errors
