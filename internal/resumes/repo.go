package resumes

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repo defines persistence operations for parsed resumes.
// FindByUser returns an empty slice, not an error, when nothing matches.
type Repo interface {
	Insert(ctx context.Context, rec ParsedResume) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (ParsedResume, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]ParsedResume, error)
	Ping(ctx context.Context) error
}
