package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/models"
)

// CakeFilter narrows catalog listings.
type CakeFilter struct {
	CategoryID    *uint
	OnlyAvailable bool
}

// CakeRepository is the catalog storage interface.
type CakeRepository interface {
	List(ctx context.Context, filter CakeFilter, p Pagination) ([]models.Cake, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Cake, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Cake, error)
	GetBySlug(ctx context.Context, slug string) (*models.Cake, error)
	Create(ctx context.Context, cake *models.Cake) error
	Update(ctx context.Context, cake *models.Cake) error
	Delete(ctx context.Context, id uint) error
	// SlugTaken reports whether slug is used by a cake other than excludeID.
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)
	ListAll(ctx context.Context) ([]models.Cake, error)
	WithTx(tx *gorm.DB) CakeRepository
}

type cakeRepository struct {
	db *gorm.DB
}

// NewCakeRepository builds a gorm-backed CakeRepository.
func NewCakeRepository(db *gorm.DB) CakeRepository {
	return &cakeRepository{db: db}
}

func (r *cakeRepository) WithTx(tx *gorm.DB) CakeRepository {
	return &cakeRepository{db: tx}
}

func (r *cakeRepository) List(ctx context.Context, filter CakeFilter, p Pagination) ([]models.Cake, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Cake{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cakes []models.Cake
	err := query.Scopes(paginate(p)).
		Preload("Category").
		Order("id DESC").
		Find(&cakes).Error
	if err != nil {
		return nil, 0, err
	}
	return cakes, total, nil
}

func (r *cakeRepository) GetByID(ctx context.Context, id uint) (*models.Cake, error) {
	var cake models.Cake
	err := r.db.WithContext(ctx).Preload("Category").First(&cake, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cake, nil
}

func (r *cakeRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Cake, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cakes []models.Cake
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cakes).Error
	if err != nil {
		return nil, err
	}
	return cakes, nil
}

func (r *cakeRepository) GetBySlug(ctx context.Context, slug string) (*models.Cake, error) {
	var cake models.Cake
	err := r.db.WithContext(ctx).Preload("Category").
		Where("slug = ?", slug).First(&cake).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cake, nil
}

func (r *cakeRepository) Create(ctx context.Context, cake *models.Cake) error {
	return r.db.WithContext(ctx).Create(cake).Error
}

func (r *cakeRepository) Update(ctx context.Context, cake *models.Cake) error {
	return r.db.WithContext(ctx).Save(cake).Error
}

func (r *cakeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cake{}, id).Error
}

func (r *cakeRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Cake{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cakeRepository) ListAll(ctx context.Context) ([]models.Cake, error) {
	var cakes []models.Cake
	err := r.db.WithContext(ctx).Order("id ASC").Find(&cakes).Error
	if err != nil {
		return nil, err
	}
	return cakes, nil
}
