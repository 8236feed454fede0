package iban

import (
	"fmt"
	"regexp"
	"strings"
)

// UAE IBAN layout: "AE" + 2 check digits + 4-letter bank code + 15-digit account number,
// 23 characters in total.
var uaeIBANRegex = regexp.MustCompile(`^AE[0-9]{2}[A-Z]{4}[0-9]{15}$`)

// Bank codes accepted in the bank-code segment (positions 5-8).
var uaeBankCodes = map[string]struct{}{
	"SCBL": {}, // Standard Chartered Bank
	"EBIL": {}, // Emirates NBD
	"ADCB": {}, // Abu Dhabi Commercial Bank
	"DUBB": {}, // Dubai Islamic Bank
	"FGBB": {}, // First Gulf Bank
	"NBAD": {}, // National Bank of Abu Dhabi
	"RAKB": {}, // RAK Bank
	"MASH": {}, // Mashreq Bank
	"HSBC": {}, // HSBC Bank
	"CITI": {}, // Citibank
	"ABUD": {}, // Abu Dhabi Islamic Bank
	"UNBD": {}, // Union National Bank
	"AJMB": {}, // Ajman Bank
	"SHAR": {}, // Sharjah Islamic Bank
	"ENBD": {}, // Emirates NBD (alternative)
	"ADIB": {}, // Abu Dhabi Islamic Bank (alternative)
	"DIBB": {}, // Dubai Islamic Bank (alternative)
	"FABB": {}, // First Abu Dhabi Bank
	"CBDU": {}, // Commercial Bank of Dubai
	"NBFU": {}, // National Bank of Fujairah
}

// Normalize strips spaces and uppercases an IBAN as entered by a user.
func Normalize(iban string) string {
	return strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
}

// ValidateUAE checks the structure of a UAE IBAN and returns whether it is
// acceptable along with a human-readable reason. Checks run in order and stop
// at the first failure. The MOD-97 checksum is deliberately not part of this
// path; callers wanting the stricter check use ValidChecksum.
func ValidateUAE(iban string) (bool, string) {
	if iban == "" {
		return false, "IBAN is required."
	}

	iban = Normalize(iban)

	if len(iban) != 23 {
		return false, "UAE IBAN must be exactly 23 characters long."
	}

	if !strings.HasPrefix(iban, "AE") {
		return false, "IBAN must start with 'AE' for UAE banks."
	}

	if !uaeIBANRegex.MatchString(iban) {
		return false, "Invalid UAE IBAN format. Expected: AE + 2 digits + 4 letters + 15 digits"
	}

	bankCode := iban[4:8]
	if _, ok := uaeBankCodes[bankCode]; !ok {
		return false, fmt.Sprintf("Invalid UAE bank code '%s'. Please check the bank code in your IBAN.", bankCode)
	}

	checkDigits := iban[2:4]
	if !isDigits(checkDigits) {
		return false, "Check digits must be numeric."
	}

	if iban[8:] == strings.Repeat("0", 15) {
		return false, "Account number cannot be all zeros."
	}

	return true, "Valid UAE IBAN"
}

// ValidChecksum validates an IBAN with the MOD-97 algorithm: the first four
// characters move to the end, letters map to 10..35, and the resulting decimal
// numeral must leave remainder 1 modulo 97. Works for any country's IBAN.
func ValidChecksum(iban string) bool {
	iban = Normalize(iban)
	if len(iban) < 5 {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	// The numeral exceeds any integer type, so the remainder is folded in
	// digit by digit.
	remainder := 0
	for _, ch := range rearranged {
		switch {
		case ch >= '0' && ch <= '9':
			remainder = (remainder*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			v := int(ch-'A') + 10
			remainder = (remainder*100 + v) % 97
		default:
			return false
		}
	}

	return remainder == 1
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(s) > 0
}
