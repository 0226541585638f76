package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"college_backend/app/model"
)

// ErrNotFound is returned by Replace when the target id does not exist.
// Lookups never return it: a missing record is reported as (nil, nil).
var ErrNotFound = errors.New("lecturer not found")

// ErrDuplicateEmail is returned when a write would give two records the
// same email.
var ErrDuplicateEmail = errors.New("email already registered")

// LecturerRepository is the storage contract shared by the Postgres,
// MongoDB and in-memory stores.
type LecturerRepository interface {
	// Insert stores a new record and assigns its id.
	Insert(ctx context.Context, input model.LecturerInput) (*model.Lecturer, error)

	// GetByID returns (nil, nil) when no record has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lecturer, error)

	GetAll(ctx context.Context) ([]model.Lecturer, error)

	// FindByDepartment matches the department exactly, case sensitive.
	// An empty filter is passed through as-is and matches only records
	// whose department is empty.
	FindByDepartment(ctx context.Context, department string) ([]model.Lecturer, error)

	// Replace overwrites all data fields of the record at lecturer.ID.
	Replace(ctx context.Context, lecturer *model.Lecturer) error

	// Delete removes the record if present; a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
