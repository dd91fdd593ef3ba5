package types

import (
	"testing"

	"github.com/perkinsfund/traceix-go/internal/errors"
)

func TestValidateUUIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateUUIDPresent("abc-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := ValidateUUIDPresent("")
	if !errors.Is(err, errors.NoUUIDProvided) {
		t.Fatalf("expected NoUUIDProvided, got %v", err)
	}
}
