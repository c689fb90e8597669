package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/postkit/postkit/models"
)

var (
	// ErrNotFound signals that no post matched the given id.
	ErrNotFound = errors.New("post not found")
	// ErrMissingField signals a caller contract violation: the HTTP layer
	// validates required fields before calling in, but the repository does
	// not rely on that.
	ErrMissingField = errors.New("missing required field")
)

// PostFields carries the caller-supplied text fields of a post. Images travel
// separately since create and update treat them differently.
type PostFields struct {
	Title         string
	Category      string
	Content       string
	AffiliateLink string
}

// PostRepository performs CRUD against the posts table. Every operation is a
// single-row statement; the connection pool is safe for concurrent use.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns all posts ordered by creation time descending.
func (r *PostRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new post. The storage layer assigns id and createdAt;
// updatedAt stays null until the first update.
func (r *PostRepository) Create(fields PostFields, imagePaths []string) (*models.Post, error) {
	if fields.Title == "" || fields.Content == "" {
		return nil, ErrMissingField
	}

	post := models.Post{
		Title:         fields.Title,
		Category:      fields.Category,
		Content:       fields.Content,
		Images:        models.EncodeImageList(imagePaths),
		ImageURL:      models.PrimaryImage(imagePaths),
		AffiliateLink: fields.AffiliateLink,
	}

	if err := r.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// Update overwrites the text fields of an existing post unconditionally.
// Images are replaced only when newImagePaths is non-empty, otherwise the
// stored images are kept. Sets updatedAt.
func (r *PostRepository) Update(id uint, fields PostFields, newImagePaths []string) (*models.Post, error) {
	if fields.Title == "" || fields.Content == "" {
		return nil, ErrMissingField
	}

	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load post %d: %w", id, err)
	}

	post.Title = fields.Title
	post.Category = fields.Category
	post.Content = fields.Content
	post.AffiliateLink = fields.AffiliateLink
	if len(newImagePaths) > 0 {
		post.Images = models.EncodeImageList(newImagePaths)
		post.ImageURL = models.PrimaryImage(newImagePaths)
	}
	now := time.Now()
	post.UpdatedAt = &now

	if err := r.db.Save(&post).Error; err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return &post, nil
}

// Delete removes a post by id. Returns ErrNotFound when no row matched.
func (r *PostRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
