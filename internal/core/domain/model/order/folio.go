package order

import (
	"fmt"
	"regexp"
	"time"

	"compras/internal/pkg/errs"
)

// Folio is the human-readable order identifier: a UTC date stamp plus a
// four-digit random disambiguator, e.g. "20260831-4821". Uniqueness is not a
// property of the value itself; the checkout transaction checks the generated
// folio against existing orders and retries on collision.
type Folio struct {
	value string
}

var folioPattern = regexp.MustCompile(`^\d{8}-\d{4}$`)

// Bounds of the random folio suffix.
const (
	FolioSuffixMin = 1000
	FolioSuffixMax = 9999
)

// NewFolio builds a folio from a timestamp and a suffix in [1000, 9999].
func NewFolio(at time.Time, suffix int) (Folio, error) {
	if suffix < FolioSuffixMin || suffix > FolioSuffixMax {
		return Folio{}, errs.NewValueIsInvalidErrorWithCause("folio suffix",
			fmt.Errorf("%d is outside [%d, %d]", suffix, FolioSuffixMin, FolioSuffixMax))
	}
	return Folio{value: fmt.Sprintf("%s-%04d", at.UTC().Format("20060102"), suffix)}, nil
}

// ParseFolio validates a caller-supplied folio string.
func ParseFolio(raw string) (Folio, error) {
	if raw == "" {
		return Folio{}, errs.NewValueIsRequiredError("folio")
	}
	if !folioPattern.MatchString(raw) {
		return Folio{}, errs.NewValueIsInvalidError("folio")
	}
	return Folio{value: raw}, nil
}

// Validate reports whether the folio holds a value.
func (f Folio) Validate() error {
	if f.value == "" {
		return errs.NewValueIsRequiredError("folio")
	}
	return nil
}

// String returns the folio text.
func (f Folio) String() string {
	return f.value
}

// QRText returns the text encoded into the order's QR code.
func (f Folio) QRText() string {
	return "ORD-" + f.value
}

// IsEqual compares two folios by value.
func (f Folio) IsEqual(other Folio) bool {
	return f.value == other.value
}
