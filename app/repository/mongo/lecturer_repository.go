package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"college_backend/app/model"
	base "college_backend/app/repository"
)

type mongoLecturerRepo struct {
	collection *mongo.Collection
}

// NewLecturerRepository returns the MongoDB-backed store. The collection
// must carry a unique index on email (ensured at connect time) so that
// duplicate writes surface as duplicate key errors.
func NewLecturerRepository(coll *mongo.Collection) base.LecturerRepository {
	return &mongoLecturerRepo{collection: coll}
}

func (r *mongoLecturerRepo) Insert(ctx context.Context, input model.LecturerInput) (*model.Lecturer, error) {
	l := model.Lecturer{
		ID:            uuid.New(),
		Name:          input.Name,
		Address:       input.Address,
		Department:    input.Department,
		Email:         input.Email,
		Phone:         input.Phone,
		CourseHandled: input.CourseHandled,
	}

	if _, err := r.collection.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, base.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("mongo insert failed: %w", err)
	}
	return &l, nil
}

func (r *mongoLecturerRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Lecturer, error) {
	var l model.Lecturer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	return &l, nil
}

func (r *mongoLecturerRepo) GetAll(ctx context.Context) ([]model.Lecturer, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoLecturerRepo) FindByDepartment(ctx context.Context, department string) ([]model.Lecturer, error) {
	return r.find(ctx, bson.M{"department": department})
}

func (r *mongoLecturerRepo) find(ctx context.Context, filter bson.M) ([]model.Lecturer, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var lecturers []model.Lecturer
	if err := cursor.All(ctx, &lecturers); err != nil {
		return nil, fmt.Errorf("mongo cursor decode failed: %w", err)
	}
	return lecturers, nil
}

func (r *mongoLecturerRepo) Replace(ctx context.Context, lecturer *model.Lecturer) error {
	update := bson.M{"$set": bson.M{
		"name":          lecturer.Name,
		"address":       lecturer.Address,
		"department":    lecturer.Department,
		"email":         lecturer.Email,
		"phone":         lecturer.Phone,
		"courseHandled": lecturer.CourseHandled,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": lecturer.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return base.ErrDuplicateEmail
		}
		return fmt.Errorf("mongo update failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", base.ErrNotFound, lecturer.ID)
	}
	return nil
}

func (r *mongoLecturerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Idempotent: DeletedCount of zero is fine.
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete failed: %w", err)
	}
	return nil
}
