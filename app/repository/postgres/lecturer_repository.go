package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"college_backend/app/model"
	base "college_backend/app/repository"
)

type lecturerRepo struct {
	db *sql.DB
}

// NewLecturerRepository returns the Postgres-backed store. The lecturers
// table carries the unique index on email, so uniqueness races are decided
// by the database.
func NewLecturerRepository(db *sql.DB) base.LecturerRepository {
	return &lecturerRepo{db: db}
}

const lecturerColumns = `id, name, address, department, email, phone, course_handled`

func scanLecturer(row interface{ Scan(...any) error }) (*model.Lecturer, error) {
	var l model.Lecturer
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Department, &l.Email, &l.Phone, &l.CourseHandled)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// isUniqueViolation reports whether err is the unique_violation error
// raised by the email index.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *lecturerRepo) Insert(ctx context.Context, input model.LecturerInput) (*model.Lecturer, error) {
	l := model.Lecturer{
		ID:            uuid.New(),
		Name:          input.Name,
		Address:       input.Address,
		Department:    input.Department,
		Email:         input.Email,
		Phone:         input.Phone,
		CourseHandled: input.CourseHandled,
	}

	query := `
		INSERT INTO lecturers (id, name, address, department, email, phone, course_handled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Name, l.Address, l.Department, l.Email, l.Phone, l.CourseHandled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, base.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert lecturer: %w", err)
	}
	return &l, nil
}

func (r *lecturerRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers WHERE id = $1`

	l, err := scanLecturer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lecturer by ID: %w", err)
	}
	return l, nil
}

func (r *lecturerRepo) GetAll(ctx context.Context) ([]model.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lecturers: %w", err)
	}
	defer rows.Close()

	return collectLecturers(rows)
}

func (r *lecturerRepo) FindByDepartment(ctx context.Context, department string) ([]model.Lecturer, error) {
	query := `SELECT ` + lecturerColumns + ` FROM lecturers WHERE department = $1`

	rows, err := r.db.QueryContext(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to find lecturers by department: %w", err)
	}
	defer rows.Close()

	return collectLecturers(rows)
}

func collectLecturers(rows *sql.Rows) ([]model.Lecturer, error) {
	var lecturers []model.Lecturer
	for rows.Next() {
		l, err := scanLecturer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lecturer: %w", err)
		}
		lecturers = append(lecturers, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lecturers, nil
}

func (r *lecturerRepo) Replace(ctx context.Context, lecturer *model.Lecturer) error {
	query := `
		UPDATE lecturers
		SET name = $1, address = $2, department = $3, email = $4, phone = $5, course_handled = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		lecturer.Name, lecturer.Address, lecturer.Department,
		lecturer.Email, lecturer.Phone, lecturer.CourseHandled,
		lecturer.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return base.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to replace lecturer: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("%w: %s", base.ErrNotFound, lecturer.ID)
	}
	return nil
}

func (r *lecturerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Idempotent: zero rows affected is fine.
	_, err := r.db.ExecContext(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lecturer: %w", err)
	}
	return nil
}
