package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Document is a schema-light JSON object as submitted by the client.
// Blogs, projects and contact messages are all stored this way; the
// backend passes them through without reshaping.
type Document map[string]interface{}

// StoredDocument is a document at rest, with the server-assigned identity
// and timestamps that the store manages.
type StoredDocument struct {
	ID        uuid.UUID `json:"id"`
	Document  Document  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON flattens the stored document into a single JSON object:
// the client's fields plus the server-assigned id and timestamps.
func (d *StoredDocument) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(d.Document)+3)
	for k, v := range d.Document {
		flat[k] = v
	}
	flat["id"] = d.ID
	flat["created_at"] = d.CreatedAt
	flat["updated_at"] = d.UpdatedAt
	return json.Marshal(flat)
}

// Collection names the document collections this service owns. Each maps
// to its own table.
type Collection string

const (
	CollectionBlogs    Collection = "blogs"
	CollectionProjects Collection = "projects"
	CollectionMessages Collection = "messages"
)

// projectRequiredFields are the fields a project document must carry on
// creation.
var projectRequiredFields = []string{
	"title",
	"image",
	"clientCode",
	"serverCode",
	"technologies",
	"description",
	"features",
}

// ValidateProject checks that a project document carries all required
// fields with non-empty values.
func ValidateProject(doc Document) error {
	for _, field := range projectRequiredFields {
		value, ok := doc[field]
		if !ok || value == nil {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
		if s, isString := value.(string); isString && s == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	return nil
}

// Merge applies a partial patch onto the document, overwriting existing
// keys and adding new ones. Nil values delete keys, matching the
// behavior of a document-store partial update.
func (d Document) Merge(patch Document) Document {
	merged := make(Document, len(d)+len(patch))
	for k, v := range d {
		merged[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}
