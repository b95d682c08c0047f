package issue

import (
	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/modules/storage/file"
	"github.com/roar-media/core/internal/pkg/response"
)

// Handler handles magazine issue HTTP requests.
type Handler struct {
	svc     *Service
	storage file.Storage
}

func NewHandler(svc *Service, storage file.Storage) *Handler {
	return &Handler{svc: svc, storage: storage}
}

// RegisterRoutes mounts issue routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, composerMW gin.HandlerFunc) {
	rg.GET("/issues", h.list)
	rg.POST("/issues", authMW, composerMW, h.create)
	rg.DELETE("/issues/:id", authMW, composerMW, h.delete)
}

// list GET /issues
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]issueResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

// create POST /issues  [auth, composer role]
func (h *Handler) create(c *gin.Context) {
	var dto CreateIssueDTO
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
		response.InternalError(c, err)
		return
	}
	response.Created(c, toResponse(item))
}

// delete DELETE /issues/:id  [auth, composer role]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
