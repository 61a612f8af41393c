package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
	"github.com/solodko/solodko-api/internal/slug"
)

// slugWriteRetries bounds suffix retries when a concurrent writer claims the
// probed slug between the probe and the insert.
const slugWriteRetries = 5

// CatalogService owns cakes, categories and slug assignment.
type CatalogService struct {
	db         *gorm.DB
	cakes      repository.CakeRepository
	categories repository.CategoryRepository
}

// NewCatalogService builds a CatalogService.
func NewCatalogService(db *gorm.DB, cakes repository.CakeRepository, categories repository.CategoryRepository) *CatalogService {
	return &CatalogService{db: db, cakes: cakes, categories: categories}
}

// CakeInput is the create/update payload for a cake.
type CakeInput struct {
	Name        string       `json:"name" binding:"required"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	ImageURL    string       `json:"image_url"`
	CategoryID  *uint        `json:"category_id"`
	IsAvailable *bool        `json:"is_available"`
	Weight      *float64     `json:"weight"`
	Ingredients string       `json:"ingredients"`
	ShelfLife   string       `json:"shelf_life"`
	SeoMeta     string       `json:"seo_meta"`
}

// CategoryInput is the create payload for a category.
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// ListCakes returns a catalog page.
func (s *CatalogService) ListCakes(ctx context.Context, filter repository.CakeFilter, p repository.Pagination) ([]models.Cake, int64, error) {
	return s.cakes.List(ctx, filter, p)
}

// GetCake fetches one cake by ID.
func (s *CatalogService) GetCake(ctx context.Context, id uint) (*models.Cake, error) {
	cake, err := s.cakes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cake == nil {
		return nil, ErrCakeNotFound
	}
	return cake, nil
}

// GetCakeBySlug fetches one cake by its URL slug.
func (s *CatalogService) GetCakeBySlug(ctx context.Context, slugValue string) (*models.Cake, error) {
	cake, err := s.cakes.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	if cake == nil {
		return nil, ErrCakeNotFound
	}
	return cake, nil
}

// CreateCake validates input, assigns a unique slug and persists the cake.
// A client-provided slug is honored when free; otherwise one is derived from
// the name.
func (s *CatalogService) CreateCake(ctx context.Context, input CakeInput) (*models.Cake, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidationFailed)
	}

	cake := &models.Cake{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		IsAvailable: true,
		Weight:      input.Weight,
		Ingredients: input.Ingredients,
		ShelfLife:   input.ShelfLife,
		SeoMeta:     input.SeoMeta,
	}
	if input.IsAvailable != nil {
		cake.IsAvailable = *input.IsAvailable
	}

	if err := s.assignAndCreate(ctx, cake, input.Slug); err != nil {
		return nil, err
	}
	return cake, nil
}

// UpdateCake applies changes. The slug never changes implicitly on rename; it
// changes only when the client sets one explicitly.
func (s *CatalogService) UpdateCake(ctx context.Context, id uint, input CakeInput) (*models.Cake, error) {
	cake, err := s.cakes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cake == nil {
		return nil, ErrCakeNotFound
	}

	if strings.TrimSpace(input.Name) != "" {
		cake.Name = strings.TrimSpace(input.Name)
	}
	if input.Description != "" {
		cake.Description = input.Description
	}
	if !input.Price.IsZero() {
		if input.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidationFailed)
		}
		cake.Price = input.Price
	}
	if input.ImageURL != "" {
		cake.ImageURL = input.ImageURL
	}
	if input.CategoryID != nil {
		cake.CategoryID = input.CategoryID
	}
	if input.IsAvailable != nil {
		cake.IsAvailable = *input.IsAvailable
	}
	if input.Weight != nil {
		cake.Weight = input.Weight
	}
	if input.Ingredients != "" {
		cake.Ingredients = input.Ingredients
	}
	if input.ShelfLife != "" {
		cake.ShelfLife = input.ShelfLife
	}
	if input.SeoMeta != "" {
		cake.SeoMeta = input.SeoMeta
	}

	if requested := strings.TrimSpace(input.Slug); requested != "" && requested != cake.Slug {
		taken, err := s.cakes.SlugTaken(ctx, requested, cake.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugExists
		}
		cake.Slug = requested
	}

	if err := s.cakes.Update(ctx, cake); err != nil {
		return nil, err
	}
	return cake, nil
}

// MigrateSlugs backfills slugs for cakes that do not have one yet. Running it
// again over already-slugged rows is a no-op. Returns the number of cakes
// updated.
func (s *CatalogService) MigrateSlugs(ctx context.Context) (int, error) {
	cakes, err := s.cakes.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range cakes {
		cake := &cakes[i]
		if cake.Slug != "" {
			continue
		}
		assigned, err := slug.AssignUnique(cake.Name, func(candidate string) (bool, error) {
			return s.cakes.SlugTaken(ctx, candidate, cake.ID)
		})
		if err != nil {
			return updated, err
		}
		cake.Slug = assigned
		if err := s.cakes.Update(ctx, cake); err != nil {
			return updated, fmt.Errorf("update cake %d slug failed: %w", cake.ID, err)
		}
		logger.Infow("slug assigned", "cake_id", cake.ID, "slug", assigned)
		updated++
	}
	return updated, nil
}

// assignAndCreate probes for a free slug and inserts. A unique-constraint
// violation at insert time means a concurrent writer won the probe; retry
// with the next suffix instead of failing.
func (s *CatalogService) assignAndCreate(ctx context.Context, cake *models.Cake, requested string) error {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		taken, err := s.cakes.SlugTaken(ctx, requested, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlugExists
		}
		cake.Slug = requested
		return s.cakes.Create(ctx, cake)
	}

	var lastErr error
	for attempt := 0; attempt < slugWriteRetries; attempt++ {
		assigned, err := slug.AssignUnique(cake.Name, func(candidate string) (bool, error) {
			return s.cakes.SlugTaken(ctx, candidate, 0)
		})
		if err != nil {
			return err
		}
		cake.Slug = assigned
		err = s.cakes.Create(ctx, cake)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		lastErr = err
		logger.Warnw("slug collided on insert, retrying", "slug", assigned, "attempt", attempt+1)
	}
	return fmt.Errorf("assign slug failed after retries: %w", lastErr)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if strings.Contains(strings.ToLower(err.Error()), "unique") {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// ListCategories returns all categories in display order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// CreateCategory persists a category with a derived-unique slug.
func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidationFailed)
	}

	assigned, err := slug.AssignUnique(input.Name, func(candidate string) (bool, error) {
		return s.categories.SlugTaken(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Slug:        assigned,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Cakes keep a dangling reference cleared
// by the database's ON DELETE behavior or left for manual cleanup.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categories.Delete(ctx, id)
}
