package service

import (
	"context"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

type ContactService struct {
	contacts *repo.ContactRepo
}

func NewContactService(contacts *repo.ContactRepo) *ContactService {
	return &ContactService{contacts: contacts}
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:      utils.NewID(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  domain.ContactPending,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrContactNotFound
	}
	return c, nil
}

func (s *ContactService) List(ctx context.Context, f repo.ContactFilter) ([]domain.Contact, int64, error) {
	return s.contacts.List(ctx, f)
}

type ContactUpdate struct {
	Status string
	Reply  string
}

// Update is an admin action; the caller is recorded as the responder.
func (s *ContactService) Update(ctx context.Context, caller *domain.User, id string, in ContactUpdate) (*domain.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		c.Status = in.Status
	}
	if in.Reply != "" {
		c.Reply = in.Reply
		if in.Status == "" {
			c.Status = domain.ContactReplied
		}
	}
	c.RepliedByID = &caller.ID

	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.contacts.FindByID(ctx, id)
}

// Info returns the association's static contact card. The officer list is
// hardcoded until member management grows an officers table.
type ContactInfo struct {
	Email         string        `json:"email"`
	President     ContactPerson `json:"president"`
	VicePresident ContactPerson `json:"vicePresident"`
}

type ContactPerson struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (s *ContactService) Info() ContactInfo {
	return ContactInfo{
		Email:         "bitsaclub@ueab.ac.ke",
		President:     ContactPerson{Name: "Alpha Chamba", Phone: "0708898899"},
		VicePresident: ContactPerson{Name: "Gloria Jebet", Phone: "0725486687"},
	}
}
