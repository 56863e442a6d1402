package models

import dErrors "lifelink/pkg/domain-errors"

// DonationType identifies what is collected during the visit.
type DonationType string

const (
	DonationWholeBlood DonationType = "whole-blood"
	DonationPlatelets  DonationType = "platelets"
	DonationPlasma     DonationType = "plasma"
)

// ParseDonationType validates a donation type received over the wire.
func ParseDonationType(s string) (DonationType, error) {
	switch DonationType(s) {
	case DonationWholeBlood, DonationPlatelets, DonationPlasma:
		return DonationType(s), nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid donation type: "+s)
	}
}

func (d DonationType) IsValid() bool {
	_, err := ParseDonationType(string(d))
	return err == nil
}

func (d DonationType) String() string { return string(d) }
