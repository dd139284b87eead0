package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

type EventService struct {
	events *repo.EventRepo

	// one lock per event id, held across the registration
	// read-modify-write so the last slot cannot be handed out twice
	regLocks sync.Map // map[string]*semaphore.Weighted
}

func NewEventService(events *repo.EventRepo) *EventService {
	return &EventService{events: events}
}

type EventInput struct {
	Title                string
	Description          string
	Date                 time.Time
	Location             string
	Image                string
	Category             string
	RegistrationRequired bool
	MaxParticipants      *int
	Published            bool
}

func (s *EventService) Create(ctx context.Context, organizer *domain.User, in EventInput) (*domain.Event, error) {
	e := &domain.Event{
		ID:                   utils.NewID(),
		Title:                in.Title,
		Description:          in.Description,
		Date:                 in.Date,
		Location:             in.Location,
		OrganizerID:          organizer.ID,
		Image:                in.Image,
		Category:             in.Category,
		RegistrationRequired: in.RegistrationRequired,
		MaxParticipants:      in.MaxParticipants,
		Published:            in.Published,
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, e.ID)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEventNotFound
	}
	return e, nil
}

func (s *EventService) List(ctx context.Context, f repo.EventFilter) ([]domain.Event, int64, error) {
	return s.events.List(ctx, f)
}

func (s *EventService) Update(ctx context.Context, caller *domain.User, id string, in EventInput) (*domain.Event, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.OrganizerID != caller.ID && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrNotOwner
	}

	e.Title = in.Title
	e.Description = in.Description
	e.Date = in.Date
	e.Location = in.Location
	e.Image = in.Image
	e.Category = in.Category
	e.RegistrationRequired = in.RegistrationRequired
	e.MaxParticipants = in.MaxParticipants
	e.Published = in.Published

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, caller *domain.User, id string) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if e.OrganizerID != caller.ID && caller.Role != domain.RoleAdmin {
		return domain.ErrNotOwner
	}
	return s.events.Delete(ctx, id)
}

// Register enforces the registration invariant under a per-event lock.
func (s *EventService) Register(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	lock := s.lockFor(eventID)
	if err := lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer lock.Release(1)

	return s.events.Register(ctx, eventID, userID)
}

func (s *EventService) lockFor(eventID string) *semaphore.Weighted {
	if l, ok := s.regLocks.Load(eventID); ok {
		return l.(*semaphore.Weighted)
	}
	l, _ := s.regLocks.LoadOrStore(eventID, semaphore.NewWeighted(1))
	return l.(*semaphore.Weighted)
}
