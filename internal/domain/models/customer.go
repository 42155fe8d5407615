package models

import "time"

// CommunicationType enumerates the supported customer touchpoint kinds.
type CommunicationType string

const (
	CommunicationCall    CommunicationType = "call"
	CommunicationVisit   CommunicationType = "visit"
	CommunicationEmail   CommunicationType = "email"
	CommunicationMeeting CommunicationType = "meeting"
)

// ValidCommunicationType reports whether t is one of the known touchpoint kinds.
func ValidCommunicationType(t CommunicationType) bool {
	switch t {
	case CommunicationCall, CommunicationVisit, CommunicationEmail, CommunicationMeeting:
		return true
	}
	return false
}

// CommunicationEntry is one logged interaction with a customer. Entries are
// immutable once appended; the log is kept newest first.
type CommunicationEntry struct {
	Type  CommunicationType `bson:"type" json:"type"`
	Notes string            `bson:"notes" json:"notes"`
	Date  time.Time         `bson:"date" json:"date"`
}

// Customer is a farm customer of the retail business.
type Customer struct {
	ID               int                  `bson:"_id" json:"Id"`
	Name             string               `bson:"name" json:"name"`
	Phone            string               `bson:"phone" json:"phone"`
	Email            string               `bson:"email" json:"email"`
	Address          string               `bson:"address" json:"address"`
	FarmSize         string               `bson:"farm_size" json:"farmSize"`
	CropTypes        []string             `bson:"crop_types" json:"cropTypes"`
	LoyaltyPoints    int                  `bson:"loyalty_points" json:"loyaltyPoints"`
	TotalPurchases   float64              `bson:"total_purchases" json:"totalPurchases"`
	LastVisit        *time.Time           `bson:"last_visit" json:"lastVisit"`
	CommunicationLog []CommunicationEntry `bson:"communication_log" json:"communicationLog"`
	CreatedOn        time.Time            `bson:"created_on" json:"-"`
}

// DeliveryStatus reports the advisory outcome of a best-effort notification.
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
)

// DeliveryOutcome carries the advisory result of one welcome notification.
// It is informational only and never affects the create operation itself.
type DeliveryOutcome struct {
	Status  DeliveryStatus `json:"status"`
	Message string         `json:"message,omitempty"`
}

// WelcomeDelivery groups the outcomes of the welcome email and SMS sends.
type WelcomeDelivery struct {
	Email DeliveryOutcome `json:"email"`
	SMS   DeliveryOutcome `json:"sms"`
}

// CreateCustomerResult is the response of a customer create: the stored
// record plus the delivery outcomes of the fire-and-forget welcome messages.
type CreateCustomerResult struct {
	Customer
	Welcome WelcomeDelivery `json:"welcome"`
}
