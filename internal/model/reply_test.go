package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply_MarshalJSON_OnlyActiveVariant(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		b, err := json.Marshal(TextReply("hello"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"text","message":"hello"}`, string(b))
	})

	t.Run("Images", func(t *testing.T) {
		b, err := json.Marshal(ImagesReply("found", []FileItem{{ID: 1, Filename: "a.png"}}))
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, "images", got["type"])
		assert.Len(t, got["data"], 1)
		assert.NotContains(t, got, "images")
		assert.NotContains(t, got, "pdfs")
	})

	t.Run("Mixed keeps empty arrays", func(t *testing.T) {
		b, err := json.Marshal(MixedReply("folder", nil, nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"mixed","message":"folder","images":[],"pdfs":[]}`, string(b))
	})
}

func TestFileItem_UploadTime(t *testing.T) {
	assert.Equal(t, "2024-01-01T00:00:00", FileItem{UploadedAt: "2024-01-01T00:00:00"}.UploadTime())
	assert.Equal(t, "2023-05-01T10:00:00", FileItem{Metadata: map[string]any{"uploaded_at": "2023-05-01T10:00:00"}}.UploadTime())
	assert.Equal(t, "", FileItem{}.UploadTime())
}
