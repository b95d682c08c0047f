package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/composer"
	"github.com/roar-media/core/internal/modules/storage/file"
	"github.com/roar-media/core/internal/pkg/pagination"
	"github.com/roar-media/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler handles article HTTP requests.
type Handler struct {
	svc     *Service
	storage file.Storage
	log     *zap.Logger
}

func NewHandler(svc *Service, storage file.Storage, log *zap.Logger) *Handler {
	return &Handler{svc: svc, storage: storage, log: log}
}

// RegisterRoutes mounts article routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, composerMW gin.HandlerFunc) {
	rg.GET("/articles", h.list)
	rg.GET("/articles/:id", h.get)
	rg.GET("/articles/:id/html", h.getHTML)

	rg.GET("/editor-articles", authMW, composerMW, h.listAll)
	rg.POST("/articles", authMW, composerMW, h.save)
	rg.DELETE("/articles/:id", authMW, composerMW, h.delete)
}

// list GET /articles
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListPublished(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]articleResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

// listAll GET /editor-articles  [auth, composer role]
// Without a page param the studio gets the whole archive as a bare array.
func (h *Handler) listAll(c *gin.Context) {
	if c.Query("page") != "" {
		items, meta, err := h.svc.ListAllPaged(pagination.FromContext(c))
		if err != nil {
			response.InternalError(c, err)
			return
		}
		out := make([]articleResponse, len(items))
		for i := range items {
			out[i] = toResponse(&items[i])
		}
		response.Paged(c, out, meta)
		return
	}

	items, err := h.svc.ListAll()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]articleResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.OK(c, out)
}

// get GET /articles/:id
func (h *Handler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, toResponse(item))
}

// getHTML GET /articles/:id/html
// The published read view: blocks decoded and projected to HTML. A block
// that fails to decode is skipped; the rest of the article still renders.
func (h *Handler) getHTML(c *gin.Context) {
	item, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if item == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}

	var wire []composer.WireBlock
	if item.Blocks != "" {
		if err := json.Unmarshal([]byte(item.Blocks), &wire); err != nil {
			response.InternalError(c, err)
			return
		}
	}
	list, loadErrs := composer.FromWire(wire)
	for _, lerr := range loadErrs {
		h.log.Warn("block skipped in read view", zap.String("article", item.ID), zap.Error(lerr))
	}

	html, err := composer.RenderHTML(list.Blocks())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// save POST /articles  [auth, composer role]
// A single multipart submission: scalar fields, the required blocks array,
// and optionally a new cover image and document.
func (h *Handler) save(c *gin.Context) {
	var dto SaveArticleDTO
	if err := c.ShouldBind(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	coverName, err := file.StoreUpload(c, h.storage, "cover", "coverImage")
	if err != nil {
		response.InternalError(c, err)
		return
	}
	pdfName, err := file.StoreUpload(c, h.storage, "pdf", "pdf")
	if err != nil {
		response.InternalError(c, err)
		return
	}

	item, err := h.svc.Save(c.Request.Context(), &dto, coverName, pdfName)
	if err != nil {
		switch {
		case errors.Is(err, composer.ErrMalformedBlockPayload):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, errPublishedIsFinal):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, toResponse(item))
}

// delete DELETE /articles/:id  [auth, composer role]
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
