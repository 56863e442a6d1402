package models

import (
	"time"

	dErrors "lifelink/pkg/domain-errors"
)

// RegisterRequest is the donor-registration payload. Dates arrive as strings
// ("2006-01-02" or RFC 3339) and are parsed at this boundary.
type RegisterRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	DateOfBirth        string `json:"dateOfBirth"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	City               string `json:"city"`
	State              string `json:"state"`
	ZipCode            string `json:"zipCode"`
	BloodType          string `json:"bloodType"`
	LastDonation       string `json:"lastDonation,omitempty"`
	MedicalConditions  string `json:"medicalConditions,omitempty"`
	EmergencyContact   string `json:"emergencyContact"`
	EmergencyAvailable bool   `json:"emergencyAvailable"`
	TermsAccepted      bool   `json:"termsAccepted"`
}

// requiredDonorFields is the canonical order used in missing-field reports.
var requiredDonorFields = []string{
	"firstName",
	"lastName",
	"dateOfBirth",
	"phone",
	"address",
	"city",
	"state",
	"zipCode",
	"bloodType",
	"emergencyContact",
	"termsAccepted",
}

// MissingFields reports which required fields are absent, in canonical order.
// Presence means a non-empty value; termsAccepted must be true, matching the
// persistence invariant.
func (r RegisterRequest) MissingFields() []string {
	present := map[string]bool{
		"firstName":        r.FirstName != "",
		"lastName":         r.LastName != "",
		"dateOfBirth":      r.DateOfBirth != "",
		"phone":            r.Phone != "",
		"address":          r.Address != "",
		"city":             r.City != "",
		"state":            r.State != "",
		"zipCode":          r.ZipCode != "",
		"bloodType":        r.BloodType != "",
		"emergencyContact": r.EmergencyContact != "",
		"termsAccepted":    r.TermsAccepted,
	}
	var missing []string
	for _, field := range requiredDonorFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// Validate applies the full per-field rules the registration wizard enforces
// step by step. The returned map holds one message per invalid field and is
// empty for a valid request.
func (r RegisterRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if len(r.FirstName) < 2 {
		errs["firstName"] = "First name must be at least 2 characters."
	}
	if len(r.LastName) < 2 {
		errs["lastName"] = "Last name must be at least 2 characters."
	}
	if r.DateOfBirth == "" {
		errs["dateOfBirth"] = "Date of birth is required."
	} else if _, err := ParseDate(r.DateOfBirth); err != nil {
		errs["dateOfBirth"] = "Date of birth must be a valid date."
	}
	if len(r.Phone) < 10 {
		errs["phone"] = "Phone number must be valid."
	}
	if len(r.Address) < 5 {
		errs["address"] = "Address is required."
	}
	if len(r.City) < 2 {
		errs["city"] = "City is required."
	}
	if len(r.State) < 2 {
		errs["state"] = "State is required."
	}
	if len(r.ZipCode) < 5 {
		errs["zipCode"] = "ZIP code is required."
	}
	if _, err := ParseBloodType(r.BloodType); err != nil {
		errs["bloodType"] = "Blood type is required."
	}
	if r.LastDonation != "" {
		if _, err := ParseDate(r.LastDonation); err != nil {
			errs["lastDonation"] = "Last donation must be a valid date."
		}
	}
	if len(r.EmergencyContact) < 5 {
		errs["emergencyContact"] = "Emergency contact is required."
	}
	if !r.TermsAccepted {
		errs["termsAccepted"] = "You must agree to the terms and conditions."
	}
	return errs
}

// ToDonor builds the persistable entity. Identifier and timestamps are
// assigned later by the service and store.
func (r RegisterRequest) ToDonor() (*Donor, error) {
	dob, err := ParseDate(r.DateOfBirth)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid dateOfBirth", err)
	}
	donor := &Donor{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		DateOfBirth:        dob,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		ZipCode:            r.ZipCode,
		BloodType:          r.BloodType,
		MedicalConditions:  r.MedicalConditions,
		EmergencyContact:   r.EmergencyContact,
		EmergencyAvailable: r.EmergencyAvailable,
		TermsAccepted:      r.TermsAccepted,
	}
	if r.LastDonation != "" {
		last, err := ParseDate(r.LastDonation)
		if err != nil {
			return nil, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid lastDonation", err)
		}
		donor.LastDonation = &last
	}
	return donor, nil
}

// ParseDate accepts the two date encodings clients send: a bare calendar date
// or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
