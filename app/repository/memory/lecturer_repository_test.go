package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"college_backend/app/model"
	base "college_backend/app/repository"
	repository "college_backend/app/repository/memory"
)

func input(email string) model.LecturerInput {
	return model.LecturerInput{Name: "John Doe", Email: email, Department: "CS"}
}

func TestMemoryRepository_Insert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	created, err := repo.Insert(ctx, input("a@x.com"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := repo.Insert(ctx, input("a@x.com"))
		require.ErrorIs(t, err, base.ErrDuplicateEmail)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})
}

func TestMemoryRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	got, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	created, err := repo.Insert(ctx, input("a@x.com"))
	require.NoError(t, err)

	t.Run("unknown id is not found", func(t *testing.T) {
		err := repo.Replace(ctx, &model.Lecturer{ID: uuid.New(), Email: "b@x.com"})
		require.ErrorIs(t, err, base.ErrNotFound)
	})

	t.Run("email collision with another record is rejected", func(t *testing.T) {
		other, err := repo.Insert(ctx, input("b@x.com"))
		require.NoError(t, err)

		clash := *other
		clash.Email = "a@x.com"
		require.ErrorIs(t, repo.Replace(ctx, &clash), base.ErrDuplicateEmail)
	})

	t.Run("overwrites all data fields", func(t *testing.T) {
		replacement := model.Lecturer{ID: created.ID, Name: "New Name", Email: "new@x.com"}
		require.NoError(t, repo.Replace(ctx, &replacement))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, replacement, *got)
		require.Empty(t, got.Department)
	})
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	created, err := repo.Insert(ctx, input("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, uuid.New()))
	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, created.ID))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestMemoryRepository_FindByDepartment(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	a := input("a@x.com")
	_, err := repo.Insert(ctx, a)
	require.NoError(t, err)

	b := input("b@x.com")
	b.Department = "SE"
	_, err = repo.Insert(ctx, b)
	require.NoError(t, err)

	result, err := repo.FindByDepartment(ctx, "CS")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "a@x.com", result[0].Email)

	result, err = repo.FindByDepartment(ctx, "Law")
	require.NoError(t, err)
	require.Empty(t, result)
}

// Concurrent inserts racing on one email: exactly one writer wins, every
// other observes the constraint violation.
func TestMemoryRepository_ConcurrentUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewLecturerRepository()

	const writers = 16
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := input("shared@x.com")
			in.Name = fmt.Sprintf("Writer %d", i)
			_, errs[i] = repo.Insert(ctx, in)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, base.ErrDuplicateEmail)
			lost++
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, writers-1, lost)
}
