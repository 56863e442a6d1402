package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a scheduled donation event. Center fields are a denormalized
// snapshot taken at scheduling time, not a reference into the center catalog.
// Appointments are never updated in place; cancellation deletes the record.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	BloodType       string             `bson:"bloodType" json:"bloodType"`
	PreviousDonor   bool               `bson:"previousDonor" json:"previousDonor"`
	AppointmentDate time.Time          `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime string             `bson:"appointmentTime" json:"appointmentTime"`
	DonationType    DonationType       `bson:"donationType" json:"donationType"`
	CenterID        int                `bson:"centerId" json:"centerId"`
	CenterName      string             `bson:"centerName" json:"centerName"`
	CenterAddress   string             `bson:"centerAddress" json:"centerAddress"`
	Questions       Questions          `bson:"questions" json:"questions"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Questions is the pre-donation screening record.
type Questions struct {
	Medication    bool `bson:"medication" json:"medication"`
	RecentIllness bool `bson:"recentIllness" json:"recentIllness"`
	RecentTravel  bool `bson:"recentTravel" json:"recentTravel"`
}
