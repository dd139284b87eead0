package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/domain"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

// fail maps domain errors onto the status taxonomy; anything unrecognized is
// a 500 with a generic message so internals never leak.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrRegistrationClosed),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrCannotDeleteAdmin):
		resp.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		resp.Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrGalleryNotFound),
		errors.Is(err, domain.ErrContactNotFound):
		resp.Fail(c, http.StatusNotFound, err.Error())
	default:
		resp.Fail(c, http.StatusInternalServerError, "Server error")
	}
}

func badRequest(c *gin.Context, msg string) {
	resp.Fail(c, http.StatusBadRequest, msg)
}

// pagination reads ?page=&limit=, defaulting to the first page of ten.
func pagination(c *gin.Context) (page, limit int) {
	page = atoiDefault(c.Query("page"), 1)
	limit = atoiDefault(c.Query("limit"), 10)
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

// boolQuery returns nil when the parameter is absent, so "published=false"
// and "no filter" stay distinct.
func boolQuery(c *gin.Context, name string) *bool {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	b := s == "true"
	return &b
}
