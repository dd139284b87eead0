package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/service"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}

type roleReq struct {
	Role string `json:"role" binding:"required,oneof=student admin"`
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req roleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Role must be one of: "+domain.RoleStudent+", "+domain.RoleAdmin)
		return
	}
	u, err := h.svc.UpdateUserRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, u)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "User deleted successfully")
}
