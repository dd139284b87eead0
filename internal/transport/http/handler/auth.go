package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type AuthHandler struct {
	svc        *service.AuthService
	sessionTTL time.Duration
	secure     bool // Secure cookie flag, on outside development
}

func NewAuthHandler(svc *service.AuthService, sessionTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, sessionTTL: sessionTTL, secure: secure}
}

type registerReq struct {
	Name      string `json:"name" binding:"required,max=64"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	StudentID string `json:"studentId" binding:"omitempty,max=32"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please provide name, email and a password of at least 6 characters")
		return
	}

	u, tok, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		StudentID: req.StudentID,
		Phone:     req.Phone,
	})
	if err != nil {
		fail(c, err)
		return
	}

	h.setSessionCookie(c, tok)
	resp.Created(c, gin.H{"user": u, "token": tok})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please provide email and password")
		return
	}

	u, tok, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setSessionCookie(c, tok)
	resp.OK(c, gin.H{"user": u, "token": tok})
}

// Logout only clears the client's cookie; a token already handed out stays
// valid until its expiry (no server-side revocation list).
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "none", 10, "/", "", h.secure, true)
	resp.Message(c, "Logged out successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	resp.OK(c, middleware.CurrentUser(c))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.secure, true)
}
