package wizard

import (
	donor "lifelink/internal/donor/models"
)

// Field ownership per registration step. Step validation only ever surfaces
// errors for the fields the step presents.
var (
	personalInfoFields = []string{
		"firstName", "lastName", "dateOfBirth", "phone",
		"address", "city", "state", "zipCode",
	}
	medicalInfoFields = []string{
		"bloodType", "lastDonation", "emergencyContact",
	}
	confirmationFields = []string{"termsAccepted"}
)

// NewRegistrationFlow builds the donor-registration wizard: Personal Info,
// Medical Info, then a Confirmation step from which the draft is submitted.
func NewRegistrationFlow(submit SubmitFunc[donor.RegisterRequest]) *Machine[donor.RegisterRequest] {
	steps := []Step[donor.RegisterRequest]{
		{
			Name: "personal-info",
			Validate: func(d donor.RegisterRequest) map[string]string {
				return fieldSubset(d.Validate(), personalInfoFields)
			},
		},
		{
			Name: "medical-info",
			Validate: func(d donor.RegisterRequest) map[string]string {
				return fieldSubset(d.Validate(), medicalInfoFields)
			},
		},
		{
			Name: "confirmation",
			Validate: func(d donor.RegisterRequest) map[string]string {
				return fieldSubset(d.Validate(), confirmationFields)
			},
		},
	}
	return New(steps, donor.RegisterRequest{}, submit)
}

// fieldSubset keeps only the errors belonging to the given fields.
func fieldSubset(all map[string]string, fields []string) map[string]string {
	out := make(map[string]string)
	for _, f := range fields {
		if msg, ok := all[f]; ok {
			out[f] = msg
		}
	}
	return out
}
