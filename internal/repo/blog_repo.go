package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/domain"
)

// BlogFilter narrows List; nil fields mean "any".
type BlogFilter struct {
	Category  string
	Published *bool
	Page      int
	Limit     int
}

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Create(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BlogRepo) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.WithContext(ctx).Preload("Author").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *BlogRepo) List(ctx context.Context, f BlogFilter) ([]domain.BlogPost, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.BlogPost{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []domain.BlogPost
	err := q.Preload("Author").
		Order("created_at desc").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *BlogRepo) Update(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BlogPost{}).Error
}

// IncrementViews bumps the counter without racing concurrent readers.
func (r *BlogRepo) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&domain.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *BlogRepo) Count(ctx context.Context, published *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.BlogPost{})
	if published != nil {
		q = q.Where("published = ?", *published)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
