// Package errs holds the typed errors shared by the domain, the use cases and
// the storage adapters.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...)
// with a struct carrying the offending parameter and an optional cause. The
// struct unwraps to its sentinel, so callers classify failures with errors.Is
// and read details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    return ctx.JSON(http.StatusNotFound, ...)
//	}
//
// The HTTP adapter relies on this classification to pick response codes.
package errs
