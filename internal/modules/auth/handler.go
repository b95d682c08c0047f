package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/roar-media/core/internal/middleware"
	"github.com/roar-media/core/internal/pkg/response"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/login", h.login)
	rg.POST("/signup", h.signup)
	rg.GET("/me", authMW, h.me)
}

// login POST /login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, errWrongCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"token": token,
		"user":  toUserResponse(user),
	})
}

// signup POST /signup
func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Signup(&dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, toUserResponse(user))
}

// me GET /me  [auth]
func (h *Handler) me(c *gin.Context) {
	user, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, toUserResponse(user))
}
