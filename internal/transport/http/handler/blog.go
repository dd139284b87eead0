package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type BlogHandler struct {
	svc *service.BlogService
}

func NewBlogHandler(svc *service.BlogService) *BlogHandler { return &BlogHandler{svc: svc} }

func (h *BlogHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	posts, total, err := h.svc.List(c.Request.Context(), repo.BlogFilter{
		Category:  c.Query("category"),
		Published: boolQuery(c, "published"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(posts), total, posts)
}

func (h *BlogHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

type blogReq struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Content       string   `json:"content" binding:"required"`
	Category      string   `json:"category" binding:"omitempty,oneof=article announcement update"`
	Tags          []string `json:"tags"`
	FeaturedImage string   `json:"featuredImage" binding:"omitempty,max=255"`
	Published     bool     `json:"published"`
}

func (r blogReq) input() service.BlogInput {
	return service.BlogInput{
		Title:         r.Title,
		Content:       r.Content,
		Category:      r.Category,
		Tags:          r.Tags,
		FeaturedImage: r.FeaturedImage,
		Published:     r.Published,
	}
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req blogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req blogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Post deleted successfully")
}
