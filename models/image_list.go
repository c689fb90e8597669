package models

import "encoding/json"

// The images column predates the multi-image API: old rows may hold an empty
// string or malformed text instead of a JSON array. All parsing happens here,
// once, at the storage boundary.

// DecodeImageList parses the stored images column into a path list. Empty or
// unparsable text decodes to an empty list, never nil.
func DecodeImageList(stored string) []string {
	if stored == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(stored), &images); err != nil || images == nil {
		return []string{}
	}
	return images
}

// EncodeImageList serializes a path list for the images column. A nil or
// empty list encodes as "[]".
func EncodeImageList(images []string) string {
	if len(images) == 0 {
		return "[]"
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// PrimaryImage returns the backward-compatible single-image path: the first
// entry, or "" when the list is empty.
func PrimaryImage(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
