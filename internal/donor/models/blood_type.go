package models

import dErrors "lifelink/pkg/domain-errors"

// BloodType is one of the eight ABO/Rh enumerants, or Unknown while a donor
// has not had their type confirmed.
//
// Usage: construct via ParseBloodType at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type BloodType string

const (
	BloodTypeAPos    BloodType = "A+"
	BloodTypeANeg    BloodType = "A-"
	BloodTypeBPos    BloodType = "B+"
	BloodTypeBNeg    BloodType = "B-"
	BloodTypeABPos   BloodType = "AB+"
	BloodTypeABNeg   BloodType = "AB-"
	BloodTypeOPos    BloodType = "O+"
	BloodTypeONeg    BloodType = "O-"
	BloodTypeUnknown BloodType = "unknown"
)

var validBloodTypes = map[BloodType]bool{
	BloodTypeAPos:    true,
	BloodTypeANeg:    true,
	BloodTypeBPos:    true,
	BloodTypeBNeg:    true,
	BloodTypeABPos:   true,
	BloodTypeABNeg:   true,
	BloodTypeOPos:    true,
	BloodTypeONeg:    true,
	BloodTypeUnknown: true,
}

// ParseBloodType constructs a BloodType from external input.
func ParseBloodType(s string) (BloodType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "blood type cannot be empty")
	}
	bt := BloodType(s)
	if !bt.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid blood type")
	}
	return bt, nil
}

// IsValid checks if the blood type is one of the supported enum values.
func (b BloodType) IsValid() bool {
	return validBloodTypes[b]
}

func (b BloodType) String() string {
	return string(b)
}
