package models

import "time"

// Post is the single content entity managed by the backend. Images are stored
// as a JSON-encoded text column; ImageURL keeps the primary image path for
// backward compatibility and is always recomputed from Images at the API
// boundary, so the two never diverge.
type Post struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:255;not null"`
	Category      string `gorm:"size:64;not null;default:''"`
	Content       string `gorm:"type:text;not null"`
	Images        string `gorm:"type:text"` // JSON array of upload paths
	ImageURL      string `gorm:"size:512"`
	AffiliateLink string `gorm:"size:512"`
	CreatedAt     time.Time
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}

// PostView is the API representation of a Post: images always a list,
// imageUrl derived from it, timestamps rendered as ISO 8601. UpdatedAt stays
// null until the first update.
type PostView struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Content       string   `json:"content"`
	Images        []string `json:"images"`
	ImageURL      string   `json:"imageUrl"`
	AffiliateLink string   `json:"affiliateLink"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     *string  `json:"updatedAt"`
}

// View converts the stored form into the API form.
func (p Post) View() PostView {
	images := DecodeImageList(p.Images)

	var updatedAt *string
	if p.UpdatedAt != nil {
		s := p.UpdatedAt.UTC().Format(time.RFC3339)
		updatedAt = &s
	}

	return PostView{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		Content:       p.Content,
		Images:        images,
		ImageURL:      PrimaryImage(images),
		AffiliateLink: p.AffiliateLink,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     updatedAt,
	}
}
