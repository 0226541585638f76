package model

import (
	"github.com/google/uuid"
)

// Lecturer is the persisted record. The ID is assigned by the store on
// insert and never changes; email is unique across all records.
type Lecturer struct {
	ID            uuid.UUID `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	Address       string    `json:"address" bson:"address"`
	Department    string    `json:"department" bson:"department"`
	Email         string    `json:"email" bson:"email"`
	Phone         string    `json:"phone" bson:"phone"`
	CourseHandled string    `json:"courseHandled" bson:"courseHandled"`
}

// LecturerInput carries the six data fields of a create or update request.
// An update replaces all six fields at once, so a field left empty here
// clears the stored value.
type LecturerInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Department    string `json:"department"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	CourseHandled string `json:"courseHandled"`
}
