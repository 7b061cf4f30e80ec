package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type SubmissionResource string

const (
	SubmissionResourcePreferences SubmissionResource = "preferences"
	SubmissionResourceResume      SubmissionResource = "resume"
)

type SubmissionAction string

const (
	SubmissionActionCreated SubmissionAction = "created"
	SubmissionActionUpdated SubmissionAction = "updated"
)

type SubmissionOutcome string

const (
	SubmissionOutcomeAccepted SubmissionOutcome = "accepted"
	SubmissionOutcomeRejected SubmissionOutcome = "rejected"
)

// SubmissionRecord is one submit attempt against a portal form, kept for the
// account activity view.
type SubmissionRecord struct {
	ID       bson.ObjectID      `json:"id,omitempty" bson:"_id,omitempty"`
	UserID   string             `json:"userId" bson:"userId"`
	Resource SubmissionResource `json:"resource" bson:"resource"`
	Action   SubmissionAction   `json:"action" bson:"action"`
	Outcome  SubmissionOutcome  `json:"outcome" bson:"outcome"`
	Reason   string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Metadata Metadata           `json:"metadata" bson:"metadata"`
}

type Metadata struct {
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

type SubmissionSearchQuery struct {
	UserID   string
	Page     int
	PageSize int
}

type SubmissionSearchResult struct {
	Submissions []*SubmissionRecord `json:"submissions"`
	TotalCount  int64               `json:"totalCount"`
	PageCount   int                 `json:"pageCount"`
	CurrentPage int                 `json:"currentPage"`
}
