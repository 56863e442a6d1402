package wizard

import (
	"net/mail"

	appointment "lifelink/internal/appointment/models"
	"lifelink/internal/center"
)

// NewSchedulingFlow builds the appointment-scheduling wizard: Location/Time,
// Personal Details, then a Review step from which the draft is submitted.
// The confirmation view after a successful submission is the machine's
// terminal confirmed state.
func NewSchedulingFlow(submit SubmitFunc[appointment.CreateRequest]) *Machine[appointment.CreateRequest] {
	steps := []Step[appointment.CreateRequest]{
		{Name: "location-time", Validate: validateLocationTime},
		{Name: "personal-details", Validate: validatePersonalDetails},
		{
			// Review presents the accumulated draft read-only; it owns no
			// fields of its own.
			Name:     "review",
			Validate: func(appointment.CreateRequest) map[string]string { return map[string]string{} },
		},
	}
	return New(steps, appointment.CreateRequest{}, submit)
}

func validateLocationTime(d appointment.CreateRequest) map[string]string {
	errs := make(map[string]string)
	if _, ok := center.ByID(d.CenterID); !ok {
		errs["centerId"] = "Please select a donation center."
	}
	if d.AppointmentDate == "" {
		errs["appointmentDate"] = "Please select a date."
	} else if _, err := appointment.ParseDate(d.AppointmentDate); err != nil {
		errs["appointmentDate"] = "Appointment date must be a valid date."
	}
	if d.AppointmentTime == "" {
		errs["appointmentTime"] = "Please select a time slot."
	}
	if _, err := appointment.ParseDonationType(d.DonationType); err != nil {
		errs["donationType"] = "Please select a donation type."
	}
	return errs
}

func validatePersonalDetails(d appointment.CreateRequest) map[string]string {
	errs := make(map[string]string)
	if len(d.FirstName) < 2 {
		errs["firstName"] = "First name must be at least 2 characters."
	}
	if len(d.LastName) < 2 {
		errs["lastName"] = "Last name must be at least 2 characters."
	}
	if !validEmail(d.Email) {
		errs["email"] = "Email must be valid."
	}
	if len(d.Phone) < 10 {
		errs["phone"] = "Phone number must be valid."
	}
	if d.BloodType == "" {
		errs["bloodType"] = "Blood type is required."
	}
	return errs
}

// validEmail is the minimal shape check the form applies; deliverability is
// not verified.
func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
