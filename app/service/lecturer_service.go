package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"college_backend/app/model"
	"college_backend/app/repository"
)

// notFound wraps repository.ErrNotFound with the requested id.
func notFound(id uuid.UUID) error {
	return fmt.Errorf("%w: %s", repository.ErrNotFound, id)
}

// LecturerService is the single access point both API surfaces call
// through. It owns the update policy and the not-found semantics; store
// errors pass through unchanged.
type LecturerService interface {
	Create(ctx context.Context, input model.LecturerInput) (*model.Lecturer, error)
	GetAll(ctx context.Context) ([]model.Lecturer, error)

	// GetByID returns (nil, nil) when no lecturer has the given id.
	// Absence is a normal result here, never an error.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lecturer, error)

	// Update replaces all six data fields with the input, keeping only
	// the id. A field left empty in the input clears the stored value.
	// Returns repository.ErrNotFound when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, input model.LecturerInput) (*model.Lecturer, error)

	// Delete is idempotent; a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByDepartment passes the filter through literally, including
	// the empty string.
	FindByDepartment(ctx context.Context, department string) ([]model.Lecturer, error)
}

type lecturerSvc struct {
	repo repository.LecturerRepository
}

func NewLecturerService(repo repository.LecturerRepository) LecturerService {
	return &lecturerSvc{repo: repo}
}

func (s *lecturerSvc) Create(ctx context.Context, input model.LecturerInput) (*model.Lecturer, error) {
	return s.repo.Insert(ctx, input)
}

func (s *lecturerSvc) GetAll(ctx context.Context) ([]model.Lecturer, error) {
	return s.repo.GetAll(ctx)
}

func (s *lecturerSvc) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecturer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *lecturerSvc) Update(ctx context.Context, id uuid.UUID, input model.LecturerInput) (*model.Lecturer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFound(id)
	}

	merged := model.Lecturer{
		ID:            existing.ID,
		Name:          input.Name,
		Address:       input.Address,
		Department:    input.Department,
		Email:         input.Email,
		Phone:         input.Phone,
		CourseHandled: input.CourseHandled,
	}

	// A delete racing between the read above and this write surfaces as
	// ErrNotFound from Replace, which is the same outcome.
	if err := s.repo.Replace(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *lecturerSvc) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *lecturerSvc) FindByDepartment(ctx context.Context, department string) ([]model.Lecturer, error) {
	return s.repo.FindByDepartment(ctx, department)
}
