// internal/app/store/enrollments/enrollmentstore.go
package enrollmentstore

import (
	"context"
	"errors"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/syneroa/platform/internal/app/store/records"
	"github.com/syneroa/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *records.Collection[models.Enrollment]
}

// ErrAlreadyEnrolled is returned when the account already holds an
// enrollment for the course (unique course_id+account_id index).
var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Enrollment](db, "enrollments")}
}

func (s *Store) Create(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = records.Now()

	if e.CourseID.IsZero() {
		return models.Enrollment{}, mongo.CommandError{Message: "course id is required"}
	}
	if e.AccountID.IsZero() {
		return models.Enrollment{}, mongo.CommandError{Message: "account id is required"}
	}

	if err := s.c.Insert(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Enrollment{}, ErrAlreadyEnrolled
		}
		return models.Enrollment{}, err
	}
	return e, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Enrollment, error) {
	return s.c.GetByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.Delete(ctx, id)
}

// ListByAccount returns an account's enrollments, newest first.
func (s *Store) ListByAccount(ctx context.Context, accountID primitive.ObjectID) ([]models.Enrollment, error) {
	return s.c.ListNewest(ctx, bson.M{"account_id": accountID})
}

// ListByCourse returns the enrollments for one course.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Enrollment, error) {
	return s.c.ListNewest(ctx, bson.M{"course_id": courseID})
}

// Exists reports whether the account already enrolled in the course.
func (s *Store) Exists(ctx context.Context, courseID, accountID primitive.ObjectID) (bool, error) {
	n, err := s.c.Count(ctx, bson.M{"course_id": courseID, "account_id": accountID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.Count(ctx, filter)
}
