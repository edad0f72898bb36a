// Package validate holds the pure per-record checks that gate persistence.
package validate

import (
	"hr-sync/feature/integration/models"
)

// InvalidError marks a record that failed validation. Such records are
// skipped, never written.
type InvalidError struct {
	Reason string
}

func (e *InvalidError) Error() string {
	return e.Reason
}

// Record checks a raw colaborador before any store operation.
// It returns nil for a persistable record or an *InvalidError.
func Record(c models.Colaborador) error {
	if !CPF(c.CPF) {
		return &InvalidError{Reason: "invalid tax id: " + c.CPF}
	}
	if c.CentroCustoIdentificador == "" {
		return &InvalidError{Reason: "missing cost center"}
	}
	return nil
}

// CPF reports whether s is a valid Brazilian personal tax id: exactly 11
// digits whose two check digits satisfy the modulo-11 scheme. Strings of one
// repeated digit (e.g. "00000000000") pass the arithmetic but are not valid
// ids and are rejected.
func CPF(s string) bool {
	if len(s) != 11 {
		return false
	}

	var digits [11]int
	repeated := true
	for i := 0; i < 11; i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return false
		}
		digits[i] = int(ch - '0')
		if digits[i] != digits[0] {
			repeated = false
		}
	}
	if repeated {
		return false
	}

	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes one modulo-11 check digit over the given prefix.
// Weights descend from len(prefix)+1 down to 2; a remainder of 10 folds to 0.
func checkDigit(prefix []int) int {
	weight := len(prefix) + 1
	sum := 0
	for _, d := range prefix {
		sum += d * weight
		weight--
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return rem
}
