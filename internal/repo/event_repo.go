package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/domain"
)

type EventFilter struct {
	Published *bool
	Upcoming  bool
	Page      int
	Limit     int
}

type EventRepo struct{ db *gorm.DB }

func NewEventRepo(db *gorm.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) DB() *gorm.DB { return r.db }

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepo) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	return findEvent(r.db.WithContext(ctx), id)
}

func findEvent(tx *gorm.DB, id string) (*domain.Event, error) {
	var e domain.Event
	err := tx.Preload("Organizer").Preload("RegisteredUsers").First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *EventRepo) List(ctx context.Context, f EventFilter) ([]domain.Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}
	if f.Upcoming {
		q = q.Where("date >= ?", time.Now())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []domain.Event
	err := q.Preload("Organizer").Preload("RegisteredUsers").
		Order("date asc").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&events).Error
	return events, total, err
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&domain.EventRegistration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Event{}).Error
	})
}

// Register appends userID to the event's registration set, enforcing the
// capacity and single-registration rules. The whole read-modify-write runs
// inside one transaction; the caller holds the per-event lock so two
// requests cannot both pass the capacity check.
func (r *EventRepo) Register(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	var out *domain.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := findEvent(tx, eventID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.ErrEventNotFound
		}
		if !e.RegistrationRequired {
			return domain.ErrRegistrationClosed
		}
		for i := range e.RegisteredUsers {
			if e.RegisteredUsers[i].ID == userID {
				return domain.ErrAlreadyRegistered
			}
		}
		if e.MaxParticipants != nil && len(e.RegisteredUsers) >= *e.MaxParticipants {
			return domain.ErrEventFull
		}
		if err := tx.Create(&domain.EventRegistration{EventID: eventID, UserID: userID}).Error; err != nil {
			return err
		}
		out, err = findEvent(tx, eventID)
		return err
	})
	return out, err
}

func (r *EventRepo) Count(ctx context.Context, published *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if published != nil {
		q = q.Where("published = ?", *published)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
