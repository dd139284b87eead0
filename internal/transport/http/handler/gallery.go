package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type GalleryHandler struct {
	svc *service.GalleryService
}

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

func (h *GalleryHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	galleries, total, err := h.svc.List(c.Request.Context(), repo.GalleryFilter{
		Published: boolQuery(c, "published"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(galleries), total, galleries)
}

func (h *GalleryHandler) Get(c *gin.Context) {
	g, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, g)
}

type galleryReq struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"omitempty,max=500"`
	Images      []string `json:"images" binding:"required,min=1"`
	EventID     *string  `json:"eventId"`
	Published   bool     `json:"published"`
}

func (r galleryReq) input() service.GalleryInput {
	return service.GalleryInput{
		Title:       r.Title,
		Description: r.Description,
		Images:      r.Images,
		EventID:     r.EventID,
		Published:   r.Published,
	}
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req galleryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	g, err := h.svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, g)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req galleryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	g, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, g)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Gallery deleted successfully")
}
