package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProject(t *testing.T) {
	complete := func() Document {
		return Document{
			"title":        "Portfolio Site",
			"image":        "https://example.com/shot.png",
			"clientCode":   "https://github.com/example/client",
			"serverCode":   "https://github.com/example/server",
			"technologies": []interface{}{"Go"},
			"description":  "A site",
			"features":     []interface{}{"auth"},
		}
	}

	t.Run("complete document passes", func(t *testing.T) {
		assert.NoError(t, ValidateProject(complete()))
	})

	t.Run("each required field is enforced", func(t *testing.T) {
		for _, field := range projectRequiredFields {
			doc := complete()
			delete(doc, field)
			err := ValidateProject(doc)
			assert.ErrorIs(t, err, ErrMissingField, "field %s", field)
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("nil value counts as missing", func(t *testing.T) {
		doc := complete()
		doc["image"] = nil
		assert.ErrorIs(t, ValidateProject(doc), ErrMissingField)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		doc := complete()
		doc["description"] = ""
		assert.ErrorIs(t, ValidateProject(doc), ErrMissingField)
	})
}

func TestDocument_Merge(t *testing.T) {
	base := Document{"title": "Old", "content": "body", "tags": []interface{}{"go"}}

	t.Run("patch overwrites and adds", func(t *testing.T) {
		merged := base.Merge(Document{"title": "New", "draft": true})

		assert.Equal(t, "New", merged["title"])
		assert.Equal(t, "body", merged["content"])
		assert.Equal(t, true, merged["draft"])
	})

	t.Run("nil value deletes the key", func(t *testing.T) {
		merged := base.Merge(Document{"content": nil})

		_, ok := merged["content"]
		assert.False(t, ok)
		assert.Equal(t, "Old", merged["title"])
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		base.Merge(Document{"title": "Changed", "content": nil})

		assert.Equal(t, "Old", base["title"])
		assert.Equal(t, "body", base["content"])
	})
}

func TestStoredDocument_MarshalJSON(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	stored := &StoredDocument{
		ID:        id,
		Document:  Document{"title": "Post", "views": float64(3)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	data, err := json.Marshal(stored)
	require.NoError(t, err)

	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &flat))

	assert.Equal(t, id.String(), flat["id"])
	assert.Equal(t, "Post", flat["title"])
	assert.Equal(t, float64(3), flat["views"])
	assert.Contains(t, flat, "created_at")
	assert.Contains(t, flat, "updated_at")
}

func TestClaims_Expired(t *testing.T) {
	now := time.Now()
	live := &Claims{ExpiresAt: now.Add(time.Hour)}
	dead := &Claims{ExpiresAt: now.Add(-time.Hour)}

	assert.False(t, live.Expired(now))
	assert.True(t, dead.Expired(now))
	assert.True(t, dead.Expired(dead.ExpiresAt))
}
