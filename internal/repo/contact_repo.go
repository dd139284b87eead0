package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JamesLawwd/BITSA/internal/domain"
)

type ContactFilter struct {
	Status string
	Page   int
	Limit  int
}

type ContactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepo) FindByID(ctx context.Context, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.WithContext(ctx).Preload("RepliedBy").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *ContactRepo) List(ctx context.Context, f ContactFilter) ([]domain.Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Contact{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []domain.Contact
	err := q.Preload("RepliedBy").
		Order("created_at desc").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContactRepo) Count(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Contact{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
