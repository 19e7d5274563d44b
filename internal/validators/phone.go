// Package validators holds input checks shared by services.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used for numbers written without a country code.
const DefaultPhoneRegion = "IN"

// ErrInvalidPhone is returned for numbers that do not parse or are not valid in the region.
var ErrInvalidPhone = errors.New("invalid phone number")

// PhoneValidator checks numbers against a fixed default region.
type PhoneValidator struct {
	region string
}

// NewPhoneValidator returns a validator for region (ISO 3166-1 alpha-2).
// An empty region falls back to DefaultPhoneRegion.
func NewPhoneValidator(region string) *PhoneValidator {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultPhoneRegion
	}
	return &PhoneValidator{region: region}
}

// Region returns the default region numbers are parsed in.
func (v *PhoneValidator) Region() string {
	return v.region
}

// Validate parses number in the validator's region. Numbers carrying an explicit
// "+<country code>" prefix are checked against their own country.
func (v *PhoneValidator) Validate(number string) error {
	parsed, err := phonenumbers.Parse(number, v.region)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return ErrInvalidPhone
	}
	return nil
}
