package episode

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/modules/storage/file"
	"github.com/roar-media/core/internal/pkg/response"
)

// Handler handles podcast episode HTTP requests.
type Handler struct {
	svc     *Service
	storage file.Storage
}

func NewHandler(svc *Service, storage file.Storage) *Handler {
	return &Handler{svc: svc, storage: storage}
}

// RegisterRoutes mounts episode routes onto the given router group. The
// /spotify path is what the reader and studio pages already call.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, composerMW gin.HandlerFunc) {
	rg.GET("/spotify", h.list)
	rg.POST("/spotify", authMW, composerMW, h.create)
	rg.DELETE("/spotify/:id", authMW, composerMW, h.delete)
}

// list GET /spotify
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]episodeResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

// create POST /spotify  [auth, composer role]
func (h *Handler) create(c *gin.Context) {
	var dto CreateEpisodeDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	coverName, err := file.StoreUpload(c, h.storage, "cover", "coverImage")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	item, err := h.svc.Create(&dto, coverName)
	if err != nil {
		if errors.Is(err, errNoEmbedURL) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(item))
}

// delete DELETE /spotify/:id  [auth, composer role]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
