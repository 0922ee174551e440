package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoupleAccount is the registration record created at signup. It is never
// mutated by the activity-completion flow; the couple's progress state is
// created lazily on first data access, independent of this record.
type CoupleAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"` // Should be unique
	PartnerEmail *string            `bson:"partnerEmail,omitempty" json:"partnerEmail,omitempty"`
	CoupleID     string             `bson:"coupleId" json:"coupleId"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
