package models

import (
	"time"

	dErrors "lifelink/pkg/domain-errors"
)

// CreateRequest is the appointment-scheduling payload. The date arrives as a
// string and is parsed at this boundary; the time is a free-text slot label.
type CreateRequest struct {
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	BloodType       string    `json:"bloodType"`
	PreviousDonor   bool      `json:"previousDonor"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	DonationType    string    `json:"donationType"`
	CenterID        int       `json:"centerId"`
	CenterName      string    `json:"centerName"`
	CenterAddress   string    `json:"centerAddress"`
	Questions       Questions `json:"questions"`
}

// requiredAppointmentFields is the canonical order used in missing-field
// reports.
var requiredAppointmentFields = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"bloodType",
	"appointmentDate",
	"appointmentTime",
	"donationType",
	"centerId",
	"centerName",
	"centerAddress",
}

// MissingFields reports which required fields are absent, in canonical order.
// Presence is a truthy check: empty strings and a zero centerId count as
// missing, types are not otherwise checked here.
func (r CreateRequest) MissingFields() []string {
	present := map[string]bool{
		"firstName":       r.FirstName != "",
		"lastName":        r.LastName != "",
		"email":           r.Email != "",
		"phone":           r.Phone != "",
		"bloodType":       r.BloodType != "",
		"appointmentDate": r.AppointmentDate != "",
		"appointmentTime": r.AppointmentTime != "",
		"donationType":    r.DonationType != "",
		"centerId":        r.CenterID != 0,
		"centerName":      r.CenterName != "",
		"centerAddress":   r.CenterAddress != "",
	}
	var missing []string
	for _, field := range requiredAppointmentFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// ParseDate accepts a bare calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ToAppointment builds the persistable entity. Identifier and timestamps are
// assigned later by the service and store.
func (r CreateRequest) ToAppointment() (*Appointment, error) {
	date, err := ParseDate(r.AppointmentDate)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid appointmentDate", err)
	}
	donationType, err := ParseDonationType(r.DonationType)
	if err != nil {
		return nil, err
	}
	return &Appointment{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		BloodType:       r.BloodType,
		PreviousDonor:   r.PreviousDonor,
		AppointmentDate: date,
		AppointmentTime: r.AppointmentTime,
		DonationType:    donationType,
		CenterID:        r.CenterID,
		CenterName:      r.CenterName,
		CenterAddress:   r.CenterAddress,
		Questions:       r.Questions,
	}, nil
}
