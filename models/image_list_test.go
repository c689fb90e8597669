package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageList(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []string
	}{
		{"json array", `["/uploads/a.png","/uploads/b.png"]`, []string{"/uploads/a.png", "/uploads/b.png"}},
		{"empty array", `[]`, []string{}},
		{"empty string", "", []string{}},
		{"garbage", "not json at all", []string{}},
		{"json null", "null", []string{}},
		{"wrong json type", `{"a":1}`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeImageList(tt.stored)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeImageList(t *testing.T) {
	assert.Equal(t, "[]", EncodeImageList(nil))
	assert.Equal(t, "[]", EncodeImageList([]string{}))
	assert.Equal(t, `["/uploads/a.png"]`, EncodeImageList([]string{"/uploads/a.png"}))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	images := []string{"/uploads/x.png", "/uploads/y.jpg"}
	assert.Equal(t, images, DecodeImageList(EncodeImageList(images)))
}

func TestPrimaryImage(t *testing.T) {
	assert.Equal(t, "", PrimaryImage(nil))
	assert.Equal(t, "", PrimaryImage([]string{}))
	assert.Equal(t, "/uploads/a.png", PrimaryImage([]string{"/uploads/a.png", "/uploads/b.png"}))
}

func TestPostView(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	t.Run("no images, never updated", func(t *testing.T) {
		view := Post{ID: 1, Title: "A", Content: "B", CreatedAt: created}.View()
		assert.Equal(t, []string{}, view.Images)
		assert.Equal(t, "", view.ImageURL)
		assert.Equal(t, "2024-05-01T10:30:00Z", view.CreatedAt)
		assert.Nil(t, view.UpdatedAt)
	})

	t.Run("imageUrl derived from images", func(t *testing.T) {
		post := Post{
			ID:        2,
			Title:     "A",
			Content:   "B",
			Images:    `["/uploads/x.png","/uploads/y.png"]`,
			ImageURL:  "/uploads/stale.png", // stale column value must not leak through
			CreatedAt: created,
		}
		view := post.View()
		assert.Len(t, view.Images, 2)
		assert.Equal(t, view.Images[0], view.ImageURL)
	})

	t.Run("updatedAt rendered after first update", func(t *testing.T) {
		updated := created.Add(time.Hour)
		view := Post{ID: 3, Title: "A", Content: "B", CreatedAt: created, UpdatedAt: &updated}.View()
		require.NotNil(t, view.UpdatedAt)
		assert.Equal(t, "2024-05-01T11:30:00Z", *view.UpdatedAt)
	})
}
