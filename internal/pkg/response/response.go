package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

// pagedResponse is the envelope for paginated list responses.
type pagedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a 200 response. Lists are sent as bare arrays so the reader
// pages can consume them directly.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Paged sends a paginated response.
func Paged(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, pagedResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	abortError(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context) {
	abortError(c, http.StatusUnauthorized, "authentication required")
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context) {
	abortError(c, http.StatusForbidden, "insufficient role")
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context) {
	abortError(c, http.StatusNotFound, "not found")
}

// NotFoundMsg sends a 404 error with a custom message.
func NotFoundMsg(c *gin.Context, message string) {
	abortError(c, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	abortError(c, http.StatusMethodNotAllowed, "method not allowed")
}

// UnprocessableEntity sends a 422 error response.
func UnprocessableEntity(c *gin.Context, message string) {
	abortError(c, http.StatusUnprocessableEntity, message)
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	abortError(c, http.StatusConflict, message)
}

// TooManyRequests sends a 429 error response.
func TooManyRequests(c *gin.Context, message string) {
	c.Header("Retry-After", "1")
	abortError(c, http.StatusTooManyRequests, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, err error) {
	abortError(c, http.StatusInternalServerError, err.Error())
}

// abortError emits the {"error": ...} body the front end expects on any
// non-2xx status.
func abortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
