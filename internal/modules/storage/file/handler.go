package file

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/pkg/response"
)

// allowed upload categories; anything else is rejected before touching
// storage.
var allowedCategories = map[string]bool{
	"cover": true,
	"pdf":   true,
}

// Handler manages upload and retrieval of cover images and documents.
type Handler struct {
	storage    Storage
	uploadsDir string
}

func NewHandler(storage Storage, uploadsDir string) *Handler {
	return &Handler{storage: storage, uploadsDir: uploadsDir}
}

// RegisterRoutes mounts upload routes on the API group and the public
// serving route on the root group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, root *gin.RouterGroup, authMW, composerMW gin.HandlerFunc) {
	api.POST("/files/upload", authMW, composerMW, h.upload)
	root.GET("/uploads/:category/:name", h.serve)
}

// upload POST /files/upload?type=cover  [auth, composer role]
func (h *Handler) upload(c *gin.Context) {
	category := c.DefaultQuery("type", "cover")
	if !allowedCategories[category] {
		response.BadRequest(c, "invalid upload type")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	stored, url, err := h.storage.Save(c.Request.Context(), category, fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"name": stored, "url": url})
}

// serve GET /uploads/:category/:name
func (h *Handler) serve(c *gin.Context) {
	category := c.Param("category")
	name := safeName(c.Param("name"))
	if !allowedCategories[category] || name == "" {
		response.NotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000")
	c.File(filepath.Join(h.uploadsDir, category, name))
}

// safeName rejects anything that could walk out of the uploads directory.
func safeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || strings.ContainsAny(name, "/\\") {
		return ""
	}
	return name
}

// StoreUpload reads one multipart file and persists it, returning the
// stored name. Used by handlers that accept files inline (article save).
func StoreUpload(c *gin.Context, storage Storage, category, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	stored, _, err := storage.Save(c.Request.Context(), category, fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	return stored, err
}
