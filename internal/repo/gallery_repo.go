package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/domain"
)

type GalleryFilter struct {
	Published *bool
	Page      int
	Limit     int
}

type GalleryRepo struct{ db *gorm.DB }

func NewGalleryRepo(db *gorm.DB) *GalleryRepo { return &GalleryRepo{db: db} }

func (r *GalleryRepo) Create(ctx context.Context, g *domain.Gallery) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GalleryRepo) FindByID(ctx context.Context, id string) (*domain.Gallery, error) {
	var g domain.Gallery
	err := r.db.WithContext(ctx).Preload("Event").Preload("UploadedBy").First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &g, err
}

func (r *GalleryRepo) List(ctx context.Context, f GalleryFilter) ([]domain.Gallery, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Gallery{})
	if f.Published != nil {
		q = q.Where("published = ?", *f.Published)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var galleries []domain.Gallery
	err := q.Preload("Event").Preload("UploadedBy").
		Order("created_at desc").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&galleries).Error
	return galleries, total, err
}

func (r *GalleryRepo) Update(ctx context.Context, g *domain.Gallery) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GalleryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Gallery{}).Error
}

func (r *GalleryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Gallery{}).Count(&n).Error
	return n, err
}
