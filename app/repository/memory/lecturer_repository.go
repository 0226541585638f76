package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"college_backend/app/model"
	base "college_backend/app/repository"
)

// LecturerRepository is the in-memory store used by tests and the memory
// storage driver. One mutex guards the map, so concurrent writers racing
// on the same email resolve deterministically: one wins, the other gets
// ErrDuplicateEmail.
type LecturerRepository struct {
	mu        sync.Mutex
	lecturers map[uuid.UUID]model.Lecturer
	order     []uuid.UUID
}

func NewLecturerRepository() *LecturerRepository {
	return &LecturerRepository{
		lecturers: make(map[uuid.UUID]model.Lecturer),
	}
}

// emailTaken must be called with the mutex held.
func (r *LecturerRepository) emailTaken(email string, except uuid.UUID) bool {
	for id, l := range r.lecturers {
		if id != except && l.Email == email {
			return true
		}
	}
	return false
}

func (r *LecturerRepository) Insert(_ context.Context, input model.LecturerInput) (*model.Lecturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(input.Email, uuid.Nil) {
		return nil, base.ErrDuplicateEmail
	}

	l := model.Lecturer{
		ID:            uuid.New(),
		Name:          input.Name,
		Address:       input.Address,
		Department:    input.Department,
		Email:         input.Email,
		Phone:         input.Phone,
		CourseHandled: input.CourseHandled,
	}
	r.lecturers[l.ID] = l
	r.order = append(r.order, l.ID)
	return &l, nil
}

func (r *LecturerRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Lecturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.lecturers[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LecturerRepository) GetAll(_ context.Context) ([]model.Lecturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lecturers []model.Lecturer
	for _, id := range r.order {
		if l, ok := r.lecturers[id]; ok {
			lecturers = append(lecturers, l)
		}
	}
	return lecturers, nil
}

func (r *LecturerRepository) FindByDepartment(_ context.Context, department string) ([]model.Lecturer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lecturers []model.Lecturer
	for _, id := range r.order {
		if l, ok := r.lecturers[id]; ok && l.Department == department {
			lecturers = append(lecturers, l)
		}
	}
	return lecturers, nil
}

func (r *LecturerRepository) Replace(_ context.Context, lecturer *model.Lecturer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lecturers[lecturer.ID]; !ok {
		return fmt.Errorf("%w: %s", base.ErrNotFound, lecturer.ID)
	}
	if r.emailTaken(lecturer.Email, lecturer.ID) {
		return base.ErrDuplicateEmail
	}
	r.lecturers[lecturer.ID] = *lecturer
	return nil
}

func (r *LecturerRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lecturers[id]; !ok {
		return nil
	}
	delete(r.lecturers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
