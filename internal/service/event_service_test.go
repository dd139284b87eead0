package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/core/database"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := domain.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        name + "@ueab.ac.ke",
		PasswordHash: hash,
		Role:         domain.RoleStudent,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedEvent(t *testing.T, svc *EventService, organizer *domain.User, maxParticipants *int, registrationRequired bool) *domain.Event {
	t.Helper()
	e, err := svc.Create(context.Background(), organizer, EventInput{
		Title:                "Career Fair",
		Description:          "Annual career fair",
		Date:                 time.Now().Add(72 * time.Hour),
		Location:             "Main Hall",
		Category:             "career",
		RegistrationRequired: registrationRequired,
		MaxParticipants:      maxParticipants,
		Published:            true,
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return e
}

func TestRegisterInvariant(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(repo.NewEventRepo(db))
	ctx := context.Background()

	organizer := seedUser(t, db, "organizer")
	userA := seedUser(t, db, "alice")
	userB := seedUser(t, db, "bob")
	userC := seedUser(t, db, "carol")

	cap2 := 2
	e := seedEvent(t, svc, organizer, &cap2, true)

	// A registers.
	got, err := svc.Register(ctx, e.ID, userA.ID)
	if err != nil {
		t.Fatalf("register A: %v", err)
	}
	if len(got.RegisteredUsers) != 1 || got.RegisteredUsers[0].ID != userA.ID {
		t.Fatalf("expected [A], got %d entries", len(got.RegisteredUsers))
	}

	// A again fails.
	if _, err := svc.Register(ctx, e.ID, userA.ID); !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// B takes the last slot.
	got, err = svc.Register(ctx, e.ID, userB.ID)
	if err != nil {
		t.Fatalf("register B: %v", err)
	}
	if len(got.RegisteredUsers) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(got.RegisteredUsers))
	}

	// C bounces off the cap.
	if _, err := svc.Register(ctx, e.ID, userC.ID); !errors.Is(err, domain.ErrEventFull) {
		t.Fatalf("expected ErrEventFull, got %v", err)
	}

	// Unknown event.
	if _, err := svc.Register(ctx, "nope", userA.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestRegisterClosedEvent(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(repo.NewEventRepo(db))

	organizer := seedUser(t, db, "organizer")
	user := seedUser(t, db, "dave")
	e := seedEvent(t, svc, organizer, nil, false)

	if _, err := svc.Register(context.Background(), e.ID, user.ID); !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}
}

func TestRegisterUnlimitedCapacity(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(repo.NewEventRepo(db))

	organizer := seedUser(t, db, "organizer")
	e := seedEvent(t, svc, organizer, nil, true)

	for i := 0; i < 15; i++ {
		u := seedUser(t, db, fmt.Sprintf("student%d", i))
		if _, err := svc.Register(context.Background(), e.ID, u.ID); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}

	got, err := svc.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.RegisteredUsers) != 15 {
		t.Fatalf("expected 15 registrations, got %d", len(got.RegisteredUsers))
	}
}

// Concurrent registrations for the last slots must never overshoot the cap.
func TestRegisterConcurrentCapacity(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(repo.NewEventRepo(db))
	ctx := context.Background()

	organizer := seedUser(t, db, "organizer")
	cap5 := 5
	e := seedEvent(t, svc, organizer, &cap5, true)

	const attempts = 20
	users := make([]*domain.User, attempts)
	for i := range users {
		users[i] = seedUser(t, db, fmt.Sprintf("student%d", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, e.ID, users[i].ID)
		}(i)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != cap5 {
		t.Fatalf("expected %d successes, got %d", cap5, ok)
	}
	if full != attempts-cap5 {
		t.Fatalf("expected %d EventFull, got %d", attempts-cap5, full)
	}

	var rows int64
	if err := db.Model(&domain.EventRegistration{}).Where("event_id = ?", e.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != int64(cap5) {
		t.Fatalf("registrations overshot the cap: %d", rows)
	}
}
