package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donor is a person registered to give blood. Donors are created once at
// registration and never updated or deleted; there is no uniqueness
// constraint, so repeat registrations produce separate records.
type Donor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName          string             `bson:"firstName" json:"firstName"`
	LastName           string             `bson:"lastName" json:"lastName"`
	DateOfBirth        time.Time          `bson:"dateOfBirth" json:"dateOfBirth"`
	Phone              string             `bson:"phone" json:"phone"`
	Address            string             `bson:"address" json:"address"`
	City               string             `bson:"city" json:"city"`
	State              string             `bson:"state" json:"state"`
	ZipCode            string             `bson:"zipCode" json:"zipCode"`
	BloodType          string             `bson:"bloodType" json:"bloodType"`
	LastDonation       *time.Time         `bson:"lastDonation,omitempty" json:"lastDonation,omitempty"`
	MedicalConditions  string             `bson:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
	EmergencyContact   string             `bson:"emergencyContact" json:"emergencyContact"`
	EmergencyAvailable bool               `bson:"emergencyAvailable" json:"emergencyAvailable"`
	TermsAccepted      bool               `bson:"termsAccepted" json:"termsAccepted"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}
