package service

import (
	"context"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

type GalleryService struct {
	galleries *repo.GalleryRepo
}

func NewGalleryService(galleries *repo.GalleryRepo) *GalleryService {
	return &GalleryService{galleries: galleries}
}

type GalleryInput struct {
	Title       string
	Description string
	Images      []string
	EventID     *string
	Published   bool
}

func (s *GalleryService) Create(ctx context.Context, uploader *domain.User, in GalleryInput) (*domain.Gallery, error) {
	g := &domain.Gallery{
		ID:           utils.NewID(),
		Title:        in.Title,
		Description:  in.Description,
		Images:       in.Images,
		EventID:      in.EventID,
		UploadedByID: uploader.ID,
		Published:    in.Published,
	}
	if err := s.galleries.Create(ctx, g); err != nil {
		return nil, err
	}
	return s.galleries.FindByID(ctx, g.ID)
}

func (s *GalleryService) Get(ctx context.Context, id string) (*domain.Gallery, error) {
	g, err := s.galleries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, domain.ErrGalleryNotFound
	}
	return g, nil
}

func (s *GalleryService) List(ctx context.Context, f repo.GalleryFilter) ([]domain.Gallery, int64, error) {
	return s.galleries.List(ctx, f)
}

func (s *GalleryService) Update(ctx context.Context, caller *domain.User, id string, in GalleryInput) (*domain.Gallery, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.UploadedByID != caller.ID && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrNotOwner
	}

	g.Title = in.Title
	g.Description = in.Description
	g.Images = in.Images
	g.EventID = in.EventID
	g.Published = in.Published

	if err := s.galleries.Update(ctx, g); err != nil {
		return nil, err
	}
	return s.galleries.FindByID(ctx, id)
}

func (s *GalleryService) Delete(ctx context.Context, caller *domain.User, id string) error {
	g, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if g.UploadedByID != caller.ID && caller.Role != domain.RoleAdmin {
		return domain.ErrNotOwner
	}
	return s.galleries.Delete(ctx, id)
}
