package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and returns it in E.164 format. The country
// code defaults to US when not supplied, matching where our intake forms run.
func Normalize(phone, countryCode string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}
	if countryCode == "" {
		countryCode = "US"
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether the phone number parses and is valid for the region.
func IsValid(phone, countryCode string) bool {
	if countryCode == "" {
		countryCode = "US"
	}
	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
