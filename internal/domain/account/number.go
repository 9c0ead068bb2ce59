package account

import "strings"

const (
	numberSeparator = "-"
	bankCodeLength  = 3  // Leading bank code digits
	sequenceLength  = 13 // Zero-padded account sequence digits
	controlLength   = 2  // Trailing control digits
)

// NormalizeNumber canonicalizes an account number into the fixed-width
// NNN-NNNNNNNNNNNNN-NN form used for all internal lookups.
//
// Normalization is best-effort, not strict validation: input that does not
// match the bank-sequence-control shape is returned unchanged so that the
// subsequent lookup fails naturally instead of erroring here. A sequence
// longer than 13 digits is also passed through; padding is purely textual,
// so there is no integer width to overflow.
//
// Example: "205-1234567-68" -> "205-0000001234567-68".
func NormalizeNumber(raw string) string {
	if !strings.Contains(raw, numberSeparator) {
		return raw
	}

	parts := strings.Split(raw, numberSeparator)
	if len(parts) != 3 {
		return raw
	}

	bankCode, sequence, control := parts[0], parts[1], parts[2]
	if len(bankCode) != bankCodeLength || !isDigits(bankCode) {
		return raw
	}
	if len(sequence) > sequenceLength || !isDigits(sequence) {
		return raw
	}
	if len(control) != controlLength || !isDigits(control) {
		return raw
	}

	padded := strings.Repeat("0", sequenceLength-len(sequence)) + sequence
	return bankCode + numberSeparator + padded + numberSeparator + control
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
