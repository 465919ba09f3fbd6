package repository

import (
	"gorm.io/gorm"

	"guidelight/internal/assistant/domain"
)

// CareerPathRepo owns the career catalog table.
type CareerPathRepo interface {
	AutoMigrate() error
	Seed() error
	List(category string) ([]domain.CareerPath, error)
	Search(keyword string) ([]domain.CareerPath, error)
}

type careerPathRepo struct {
	db *gorm.DB
}

// NewCareerPathRepo create CareerPathRepo
func NewCareerPathRepo(db *gorm.DB) CareerPathRepo {
	return &careerPathRepo{db: db}
}

func (r *careerPathRepo) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.CareerPath{})
}

// Seed loads the default catalog the first time the table is empty.
func (r *careerPathRepo) Seed() error {
	var count int64
	if err := r.db.Model(&domain.CareerPath{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(defaultCareerPaths()).Error
}

// List returns paths sorted by ROI, best first. Empty or "all"
// category means no filter.
func (r *careerPathRepo) List(category string) ([]domain.CareerPath, error) {
	q := r.db.Order("roi DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var paths []domain.CareerPath
	if err := q.Find(&paths).Error; err != nil {
		return nil, err
	}
	return paths, nil
}

// Search matches name, category and description case-insensitively.
func (r *careerPathRepo) Search(keyword string) ([]domain.CareerPath, error) {
	var paths []domain.CareerPath
	like := "%" + keyword + "%"
	err := r.db.
		Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", like, like, like).
		Order("roi DESC").
		Find(&paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
