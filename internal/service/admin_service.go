package service

import (
	"context"
	"time"

	"github.com/JamesLawwd/BITSA/internal/core/cache"
	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

type AdminService struct {
	users     *repo.UserRepo
	posts     *repo.BlogRepo
	events    *repo.EventRepo
	galleries *repo.GalleryRepo
	contacts  *repo.ContactRepo
	cache     *cache.Cache // nil disables caching
}

func NewAdminService(users *repo.UserRepo, posts *repo.BlogRepo, events *repo.EventRepo,
	galleries *repo.GalleryRepo, contacts *repo.ContactRepo, c *cache.Cache) *AdminService {
	return &AdminService{
		users:     users,
		posts:     posts,
		events:    events,
		galleries: galleries,
		contacts:  contacts,
		cache:     c,
	}
}

type CountStat struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published,omitempty"`
	Draft     int64 `json:"draft,omitempty"`
}

type ContactStat struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
}

type DashboardStats struct {
	Users     CountStat   `json:"users"`
	Posts     CountStat   `json:"posts"`
	Events    CountStat   `json:"events"`
	Galleries CountStat   `json:"galleries"`
	Contacts  ContactStat `json:"contacts"`
}

func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	return cache.GetOrLoadJSON(s.cache, ctx, statsCacheKey, statsCacheTTL, s.loadStats)
}

func (s *AdminService) loadStats(ctx context.Context) (*DashboardStats, error) {
	published := true

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPosts, err := s.posts.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	publishedPosts, err := s.posts.Count(ctx, &published)
	if err != nil {
		return nil, err
	}
	totalEvents, err := s.events.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	publishedEvents, err := s.events.Count(ctx, &published)
	if err != nil {
		return nil, err
	}
	totalGalleries, err := s.galleries.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalContacts, err := s.contacts.Count(ctx, "")
	if err != nil {
		return nil, err
	}
	pendingContacts, err := s.contacts.Count(ctx, domain.ContactPending)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Users: CountStat{Total: totalUsers},
		Posts: CountStat{
			Total:     totalPosts,
			Published: publishedPosts,
			Draft:     totalPosts - publishedPosts,
		},
		Events: CountStat{
			Total:     totalEvents,
			Published: publishedEvents,
			Draft:     totalEvents - publishedEvents,
		},
		Galleries: CountStat{Total: totalGalleries},
		Contacts: ContactStat{
			Total:   totalContacts,
			Pending: pendingContacts,
		},
	}, nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser refuses to remove an admin account, whoever is asking.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.Role == domain.RoleAdmin {
		return domain.ErrCannotDeleteAdmin
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, statsCacheKey)
	}
	return nil
}
