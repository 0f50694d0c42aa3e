package models

import "github.com/google/uuid"

// Write-operation result envelopes. The frontend consumes the same shapes
// the document-store driver used to return, so the field names are kept.

type InsertResult struct {
	InsertedID uuid.UUID `json:"insertedId"`
	Status     string    `json:"status,omitempty"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
