package resumes

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParsedResume is a parsed resume persisted for a user.
// Records are immutable once stored; there is no delete path in this service.
type ParsedResume struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ParsedText  string             `bson:"parsedText"`
	Entities    []string           `bson:"entities"`
	UserID      primitive.ObjectID `bson:"userId"`
	FileName    string             `bson:"fileName"`
	FileSize    int64              `bson:"fileSize"`
	ContentType string             `bson:"contentType"`
}
