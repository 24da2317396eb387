// Package license implements the offline activation key scheme.
//
// Keys have the shape P<days>-<hash8>, where the hash binds the key to a
// (phone number, device identity) pair. The same salt and algorithm are used
// to mint and to verify, so validation needs no network call: the verifying
// installation recomputes the hash with its own device identity.
//
// The checksum is a deterministic obfuscation, not a MAC, and the binding is
// weaker than it looks: the 8 retained base64 characters encode only the
// first 6 bytes of the combined input, so with a phone number of 6 or more
// digits the checksum depends on the phone alone and the key redeems on any
// device. It must stay bit-for-bit compatible with keys already in
// circulation, so the algorithm (base64 alphabet, alphanumeric filter,
// 8-character truncation) is frozen, collision included. Anything stronger
// needs a server-verified scheme behind the same call sites.
package license

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// secretSalt is shared between the minting console and the validator.
// Changing it invalidates every issued key.
const secretSalt = "PREGADOR_2025_SECURE"

// LifetimePlanName is the plan label for universal-code activations.
const LifetimePlanName = "Vitalício"

// universalCodes grant lifetime premium regardless of phone or device.
// Distinct from the admin console secret, which only opens the console.
var universalCodes = map[string]bool{
	"PAPTECH2025":  true,
	"PREGADOR-PRO": true,
	"924052039":    true,
}

// DeriveChecksum computes the 8-character checksum binding a phone number to
// a device identity. Returns the empty string when the phone number is empty.
func DeriveChecksum(phoneNumber, deviceID string) string {
	if phoneNumber == "" {
		return ""
	}

	cleanPhone := digitsOnly(phoneNumber)
	cleanDevice := strings.ToUpper(strings.TrimSpace(deviceID))
	combined := cleanPhone + ":" + cleanDevice + ":" + secretSalt

	encoded := base64.StdEncoding.EncodeToString([]byte(combined))
	filtered := alnumOnly(encoded)
	upper := strings.ToUpper(filtered)
	if len(upper) > 8 {
		upper = upper[:8]
	}
	return upper
}

// GenerateKey mints an activation key for a plan of the given length in days.
// The day count is not range-checked; the minting console is trusted.
func GenerateKey(phoneNumber, deviceID string, days int) string {
	return fmt.Sprintf("P%d-%s", days, DeriveChecksum(phoneNumber, deviceID))
}

// IsUniversalCode reports whether a normalized code is a universal bypass code.
func IsUniversalCode(code string) bool {
	return universalCodes[code]
}

// Normalize trims and upper-cases an activation code for comparison.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseKey splits a normalized structured key into its day count and hash.
// Returns ok=false for anything that does not look like P<digits>-<hash>.
func ParseKey(code string) (days int, hash string, ok bool) {
	parts := strings.Split(code, "-")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "P") {
		return 0, "", false
	}

	days, err := strconv.Atoi(parts[0][1:])
	if err != nil {
		return 0, "", false
	}

	return days, parts[1], true
}

// PlanNameForDays derives the display plan name for a plan length.
func PlanNameForDays(days int) string {
	switch days {
	case 7:
		return "Semanal"
	case 30:
		return "Mensal"
	default:
		return fmt.Sprintf("%d Dias", days)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func alnumOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
