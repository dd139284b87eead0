package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, u)
}

type profileReq struct {
	Name      string `json:"name" binding:"omitempty,max=64"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
	Bio       string `json:"bio" binding:"omitempty,max=500"`
	StudentID string `json:"studentId" binding:"omitempty,max=32"`
	Avatar    string `json:"avatar" binding:"omitempty,max=255"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	u, err := h.svc.UpdateProfile(c.Request.Context(), middleware.CurrentUser(c).ID, service.ProfileUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		Bio:       req.Bio,
		StudentID: req.StudentID,
		Avatar:    req.Avatar,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, u)
}

func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(users), int64(len(users)), users)
}
