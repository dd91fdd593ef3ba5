package types

import "github.com/perkinsfund/traceix-go/internal/errors"

// ValidateUUIDPresent rejects empty job identifiers before any network
// activity. The identifier is otherwise forwarded verbatim; the service
// owns format validation.
func ValidateUUIDPresent(uuid string) error {
	if uuid == "" {
		return errors.NewNoUUIDProvided()
	}
	return nil
}
