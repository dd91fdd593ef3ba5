package api

import stderrors "errors"

// errorsAs avoids clashing with the internal errors package import.
func errorsAs(err error, target any) bool {
	return stderrors.As(err, target)
}
