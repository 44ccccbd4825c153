package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	vehicleNumberRe = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 -]{0,18}[A-Z0-9]$|^[A-Z0-9]$`)
	pinCodeRe       = regexp.MustCompile(`^[0-9]{3,10}$`)
)

// NormalizeVehicleNumber upper-cases and trims a registration plate.
func NormalizeVehicleNumber(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsVehicleNumber reports whether s is a plausible registration plate of at
// most 20 characters. s must already be normalized.
func IsVehicleNumber(s string) bool {
	return vehicleNumberRe.MatchString(s)
}

func IsPinCode(s string) bool {
	return pinCodeRe.MatchString(s)
}

func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
