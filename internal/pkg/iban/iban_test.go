package iban

import (
	"strings"
	"testing"
)

func TestValidateUAE(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
		msg   string
	}{
		{"valid", "AE07EBIL001234567890123", true, "Valid UAE IBAN"},
		{"valid with spaces and lowercase", "ae07 ebil 0012 3456 7890 123", true, "Valid UAE IBAN"},
		{"empty", "", false, "IBAN is required."},
		{"too short", "AE07EBIL00123456789012", false, "UAE IBAN must be exactly 23 characters long."},
		{"too long", "AE07EBIL0012345678901234", false, "UAE IBAN must be exactly 23 characters long."},
		{"wrong country", "GB07EBIL001234567890123", false, "IBAN must start with 'AE' for UAE banks."},
		{"digits where bank code expected", "AE070331234567890123456", false, "Invalid UAE IBAN format. Expected: AE + 2 digits + 4 letters + 15 digits"},
		{"unknown bank code", "AE07ZZZZ001234567890123", false, "Invalid UAE bank code 'ZZZZ'. Please check the bank code in your IBAN."},
		{"all zero account", "AE07EBIL000000000000000", false, "Account number cannot be all zeros."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, msg := ValidateUAE(c.input)
			if ok != c.ok {
				t.Fatalf("ValidateUAE(%q) ok = %v, want %v (msg %q)", c.input, ok, c.ok, msg)
			}
			if msg != c.msg {
				t.Errorf("ValidateUAE(%q) msg = %q, want %q", c.input, msg, c.msg)
			}
		})
	}
}

func TestValidateUAE_BankCodeWhitelist(t *testing.T) {
	for code := range uaeBankCodes {
		input := "AE07" + code + "001234567890123"
		ok, msg := ValidateUAE(input)
		if !ok {
			t.Errorf("ValidateUAE(%q) = false (%q), want true", input, msg)
		}
	}
}

func TestValidChecksum(t *testing.T) {
	valid := []string{
		"GB82WEST12345698765432",
		"DE89370400440532013000",
		"FR1420041010050500013M02606",
		"gb82 west 1234 5698 7654 32", // normalization applies
	}
	for _, iban := range valid {
		if !ValidChecksum(iban) {
			t.Errorf("ValidChecksum(%q) = false, want true", iban)
		}
	}

	invalid := []string{
		"GB82WEST12345698765433", // last digit mutated
		"GB82WEST12345698765431",
		"GB83WEST12345698765432", // check digit mutated
		"GB82WEST1234569876543!", // non-alphanumeric
		"",
		"AE07",
	}
	for _, iban := range invalid {
		if ValidChecksum(iban) {
			t.Errorf("ValidChecksum(%q) = true, want false", iban)
		}
	}
}

func TestValidChecksum_SingleDigitMutations(t *testing.T) {
	const known = "GB82WEST12345698765432"
	for i, ch := range known {
		if ch < '0' || ch > '9' {
			continue
		}
		mutated := known[:i] + string('0'+(ch-'0'+1)%10) + known[i+1:]
		if ValidChecksum(mutated) {
			t.Errorf("ValidChecksum(%q) = true after mutating position %d, want false", mutated, i)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(" ae07 ebil 0012 ")
	want := "AE07EBIL0012"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
	if strings.Contains(got, " ") {
		t.Errorf("Normalize left spaces in %q", got)
	}
}
