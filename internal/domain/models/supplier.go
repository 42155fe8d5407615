package models

import "time"

// Supplier defaults applied on create.
const (
	DefaultReliability  = 85
	DefaultPaymentTerms = "Net 30"
)

// ReliabilityBand is the qualitative rating derived from a reliability score.
type ReliabilityBand string

const (
	BandReliable ReliabilityBand = "Reliable"
	BandGood     ReliabilityBand = "Good"
	BandAverage  ReliabilityBand = "Average"
	BandPoor     ReliabilityBand = "Poor"
)

// Supplier is one upstream vendor.
type Supplier struct {
	ID           int        `bson:"_id" json:"Id"`
	Name         string     `bson:"name" json:"name"`
	Contact      string     `bson:"contact" json:"contact"`
	Address      string     `bson:"address" json:"address"`
	Products     []string   `bson:"products" json:"products"`
	PaymentTerms string     `bson:"payment_terms" json:"paymentTerms"`
	LastDelivery *time.Time `bson:"last_delivery" json:"lastDelivery"`
	Reliability  int        `bson:"reliability" json:"reliability"`
	CreatedOn    time.Time  `bson:"created_on" json:"-"`
}

// ReliabilityBand buckets the supplier's score into its qualitative band.
func (s Supplier) ReliabilityBand() ReliabilityBand {
	return ReliabilityBandFor(s.Reliability)
}

// ReliabilityBandFor maps a score to its band.
func ReliabilityBandFor(score int) ReliabilityBand {
	switch {
	case score >= 90:
		return BandReliable
	case score >= 80:
		return BandGood
	case score >= 70:
		return BandAverage
	default:
		return BandPoor
	}
}

// ClampReliability bounds a score to the valid 0..100 range.
func ClampReliability(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
