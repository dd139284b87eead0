package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope every endpoint returns:
// {success, data?, message?, count?, total?}.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Body{Success: true, Message: msg})
}

func CreatedMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: msg, Data: data})
}

func MessageData(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Message: msg, Data: data})
}

// List carries the page size and overall total alongside the rows.
func List(c *gin.Context, count int, total int64, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Count: &count, Total: &total, Data: data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Body{Success: false, Message: msg})
}

func AbortFail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{Success: false, Message: msg})
}
