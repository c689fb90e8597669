package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/postkit/postkit/auth"
	"github.com/postkit/postkit/models"
	"github.com/postkit/postkit/repository"
	"github.com/postkit/postkit/storage"
	"github.com/postkit/postkit/utils"
)

const maxImageFiles = 10

// PostController maps the post CRUD operations onto HTTP. Mutating endpoints
// store uploads first, then run the admin gate, then validate fields; files
// stored before a request is denied are removed only when rejected-upload
// cleanup is enabled.
type PostController struct {
	repo            *repository.PostRepository
	store           *storage.ImageStore
	gate            *auth.Gate
	cleanupRejected bool
}

// NewPostController creates a new PostController instance.
func NewPostController(repo *repository.PostRepository, store *storage.ImageStore, gate *auth.Gate, cleanupRejected bool) *PostController {
	return &PostController{repo: repo, store: store, gate: gate, cleanupRejected: cleanupRejected}
}

// ListPosts returns all posts as a bare JSON array, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	posts, err := p.repo.List()
	if err != nil {
		utils.Sugar.Errorw("failed to list posts", "error", err)
		utils.Error(ctx, http.StatusInternalServerError, "internal server error")
		return
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View())
	}
	ctx.JSON(http.StatusOK, views)
}

// CreatePost creates a new post from a multipart form with up to 10 image
// files.
func (p *PostController) CreatePost(ctx *gin.Context) {
	req := readMutateRequest(ctx)
	if len(req.files) > maxImageFiles {
		utils.Error(ctx, http.StatusBadRequest, "at most 10 image files are allowed")
		return
	}

	stored, err := p.storeUploads(req.files)
	if err != nil {
		utils.Sugar.Errorw("failed to store uploaded images", "error", err)
		p.reject(ctx, http.StatusInternalServerError, "internal server error", stored)
		return
	}
	if !p.gate.Authorize(req.password) {
		p.reject(ctx, http.StatusUnauthorized, "invalid admin password", stored)
		return
	}
	if req.fields.Title == "" || req.fields.Content == "" {
		p.reject(ctx, http.StatusBadRequest, "title and content are required", stored)
		return
	}

	post, err := p.repo.Create(req.fields, stored)
	if err != nil {
		utils.Sugar.Errorw("failed to create post", "error", err)
		p.reject(ctx, http.StatusInternalServerError, "internal server error", stored)
		return
	}
	utils.Success(ctx, gin.H{"post": post.View()})
}

// UpdatePost overwrites an existing post. Images are replaced only when the
// request carries new files, otherwise the stored ones are kept.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	req := readMutateRequest(ctx)
	if len(req.files) > maxImageFiles {
		utils.Error(ctx, http.StatusBadRequest, "at most 10 image files are allowed")
		return
	}

	stored, err := p.storeUploads(req.files)
	if err != nil {
		utils.Sugar.Errorw("failed to store uploaded images", "error", err)
		p.reject(ctx, http.StatusInternalServerError, "internal server error", stored)
		return
	}
	if !p.gate.Authorize(req.password) {
		p.reject(ctx, http.StatusUnauthorized, "invalid admin password", stored)
		return
	}
	if req.fields.Title == "" || req.fields.Content == "" {
		p.reject(ctx, http.StatusBadRequest, "title and content are required", stored)
		return
	}

	id, ok := parseID(ctx.Param("id"))
	if !ok {
		p.reject(ctx, http.StatusNotFound, "post not found", stored)
		return
	}

	post, err := p.repo.Update(id, req.fields, stored)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			p.reject(ctx, http.StatusNotFound, "post not found", stored)
			return
		}
		utils.Sugar.Errorw("failed to update post", "id", id, "error", err)
		p.reject(ctx, http.StatusInternalServerError, "internal server error", stored)
		return
	}
	utils.Success(ctx, gin.H{"post": post.View()})
}

// DeletePost removes a post. The admin password travels in a JSON body here,
// not a multipart form.
func (p *PostController) DeletePost(ctx *gin.Context) {
	var req struct {
		AdminPassword string `json:"adminPassword"`
	}
	// A missing or malformed body means a missing password
	_ = ctx.ShouldBindJSON(&req)

	if !p.gate.Authorize(req.AdminPassword) {
		utils.Error(ctx, http.StatusUnauthorized, "invalid admin password")
		return
	}

	id, ok := parseID(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	if err := p.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Sugar.Errorw("failed to delete post", "id", id, "error", err)
		utils.Error(ctx, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.Success(ctx, nil)
}

type mutateRequest struct {
	password string
	fields   repository.PostFields
	files    []*multipart.FileHeader
}

func readMutateRequest(ctx *gin.Context) mutateRequest {
	req := mutateRequest{
		password: ctx.PostForm("adminPassword"),
		fields: repository.PostFields{
			Title:         utils.Sanitize(strings.TrimSpace(ctx.PostForm("title"))),
			Category:      strings.TrimSpace(ctx.PostForm("category")),
			Content:       utils.Sanitize(ctx.PostForm("content")),
			AffiliateLink: strings.TrimSpace(ctx.PostForm("affiliateLink")),
		},
	}
	if form, err := ctx.MultipartForm(); err == nil {
		req.files = form.File["images"]
	}
	return req
}

// storeUploads persists each uploaded file and returns the stored relative
// paths. On failure the already-stored paths are returned so the caller can
// clean them up.
func (p *PostController) storeUploads(files []*multipart.FileHeader) ([]string, error) {
	stored := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return stored, err
		}
		rel, err := p.store.Store(f, fh.Filename)
		_ = f.Close()
		if err != nil {
			return stored, err
		}
		stored = append(stored, rel)
	}
	return stored, nil
}

// reject answers a denied or invalid mutating request, removing any files it
// already stored when cleanup is enabled.
func (p *PostController) reject(ctx *gin.Context, status int, message string, stored []string) {
	if p.cleanupRejected {
		for _, rel := range stored {
			if err := p.store.Remove(rel); err != nil {
				utils.Sugar.Warnw("failed to remove rejected upload", "path", rel, "error", err)
			}
		}
	}
	utils.Error(ctx, status, message)
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
