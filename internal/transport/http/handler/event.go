package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/internal/service"
	"github.com/JamesLawwd/BITSA/internal/transport/http/middleware"
	resp "github.com/JamesLawwd/BITSA/internal/transport/http/response"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler { return &EventHandler{svc: svc} }

func (h *EventHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	events, total, err := h.svc.List(c.Request.Context(), repo.EventFilter{
		Published: boolQuery(c, "published"),
		Upcoming:  c.Query("upcoming") == "true",
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.List(c, len(events), total, events)
}

func (h *EventHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, e)
}

type eventReq struct {
	Title                string    `json:"title" binding:"required,max=200"`
	Description          string    `json:"description" binding:"required"`
	Date                 time.Time `json:"date" binding:"required"`
	Location             string    `json:"location" binding:"required,max=200"`
	Image                string    `json:"image" binding:"omitempty,max=255"`
	Category             string    `json:"category" binding:"required,max=64"`
	RegistrationRequired bool      `json:"registrationRequired"`
	MaxParticipants      *int      `json:"maxParticipants" binding:"omitempty,gt=0"`
	Published            bool      `json:"published"`
}

func (r eventReq) input() service.EventInput {
	return service.EventInput{
		Title:                r.Title,
		Description:          r.Description,
		Date:                 r.Date,
		Location:             r.Location,
		Image:                r.Image,
		Category:             r.Category,
		RegistrationRequired: r.RegistrationRequired,
		MaxParticipants:      r.MaxParticipants,
		Published:            r.Published,
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	e, err := h.svc.Create(c.Request.Context(), middleware.CurrentUser(c), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, e)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	e, err := h.svc.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), req.input())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, e)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.Message(c, "Event deleted successfully")
}

func (h *EventHandler) Register(c *gin.Context) {
	e, err := h.svc.Register(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c).ID)
	if err != nil {
		middleware.CountRegistration(registrationOutcome(err))
		fail(c, err)
		return
	}
	middleware.CountRegistration("ok")
	resp.MessageData(c, "Registered for event successfully", e)
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrEventFull):
		return "full"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "duplicate"
	case errors.Is(err, domain.ErrRegistrationClosed):
		return "closed"
	default:
		return "error"
	}
}
