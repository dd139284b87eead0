package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type contactReq struct {
	Name    string `json:"name" binding:"required,max=64"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

// Create is the one public write endpoint.
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ct, err := h.svc.Create(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMessage(c, "Contact message sent successfully", ct)
}

func (h *ContactHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	contacts, total, err := h.svc.List(c.Request.Context(), repo.ContactFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(contacts), total, contacts)
}

func (h *ContactHandler) Get(c *gin.Context) {
	ct, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ct)
}

type contactUpdateReq struct {
	Status string `json:"status" binding:"omitempty,oneof=pending read replied"`
	Reply  string `json:"reply"`
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req contactUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ct, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), service.ContactUpdate{
		Status: req.Status,
		Reply:  req.Reply,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ct)
}

func (h *ContactHandler) Info(c *gin.Context) {
	resp.OK(c, h.svc.Info())
}
