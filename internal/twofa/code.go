package twofa

import (
	"strings"
	"time"

	"github.com/pquerna/otp/totp"
)

// CodeLength is the number of digits in a TOTP code.
const CodeLength = 6

// SanitizeCode strips everything but digits from user input, the same
// filtering the code field applies as the user types.
func SanitizeCode(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCode reports whether code is exactly six digits. Submission is
// refused until this holds.
func ValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CurrentCode computes the TOTP code for secret at the current time.
// Used by the --totp flag so a dev setup can enroll without a phone.
func CurrentCode(secret string) (string, error) {
	return totp.GenerateCode(secret, time.Now())
}
