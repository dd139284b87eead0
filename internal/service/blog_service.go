package service

import (
	"context"

	"github.com/JamesLawwd/BITSA/internal/domain"
	"github.com/JamesLawwd/BITSA/internal/repo"
	"github.com/JamesLawwd/BITSA/pkg/utils"
)

type BlogService struct {
	posts *repo.BlogRepo
}

func NewBlogService(posts *repo.BlogRepo) *BlogService { return &BlogService{posts: posts} }

type BlogInput struct {
	Title         string
	Content       string
	Category      string
	Tags          []string
	FeaturedImage string
	Published     bool
}

func (s *BlogService) Create(ctx context.Context, author *domain.User, in BlogInput) (*domain.BlogPost, error) {
	if in.Category == "" {
		in.Category = domain.CategoryArticle
	}
	p := &domain.BlogPost{
		ID:            utils.NewID(),
		Title:         in.Title,
		Content:       in.Content,
		AuthorID:      author.ID,
		Category:      in.Category,
		Tags:          in.Tags,
		FeaturedImage: in.FeaturedImage,
		Published:     in.Published,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.posts.FindByID(ctx, p.ID)
}

// Get returns the post and counts the view.
func (s *BlogService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}
	if err := s.posts.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	p.Views++
	return p, nil
}

func (s *BlogService) List(ctx context.Context, f repo.BlogFilter) ([]domain.BlogPost, int64, error) {
	return s.posts.List(ctx, f)
}

func (s *BlogService) Update(ctx context.Context, caller *domain.User, id string, in BlogInput) (*domain.BlogPost, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}
	if p.AuthorID != caller.ID && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrNotOwner
	}

	p.Title = in.Title
	p.Content = in.Content
	if in.Category != "" {
		p.Category = in.Category
	}
	p.Tags = in.Tags
	p.FeaturedImage = in.FeaturedImage
	p.Published = in.Published

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.posts.FindByID(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, caller *domain.User, id string) error {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrPostNotFound
	}
	if p.AuthorID != caller.ID && caller.Role != domain.RoleAdmin {
		return domain.ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}
