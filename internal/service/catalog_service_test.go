package service

import (
	"context"
	"errors"
	"testing"

	"github.com/solodko/solodko-api/internal/models"
	"github.com/solodko/solodko-api/internal/repository"
)

func TestCreateCakeAssignsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	cake, err := svc.CreateCake(context.Background(), CakeInput{
		Name:  "Торт «Наполеон»",
		Price: models.NewMoneyFromFloat(450),
	})
	if err != nil {
		t.Fatalf("CreateCake: %v", err)
	}
	if cake.Slug != "napoleon" {
		t.Errorf("slug = %q, want napoleon", cake.Slug)
	}
}

func TestCreateCakeSuffixesOnCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	first, err := svc.CreateCake(context.Background(), CakeInput{Name: "Торт", Price: models.NewMoneyFromFloat(100)})
	if err != nil {
		t.Fatalf("first CreateCake: %v", err)
	}
	second, err := svc.CreateCake(context.Background(), CakeInput{Name: "Торт", Price: models.NewMoneyFromFloat(100)})
	if err != nil {
		t.Fatalf("second CreateCake: %v", err)
	}

	if first.Slug != "cake" {
		t.Errorf("first slug = %q, want cake", first.Slug)
	}
	if second.Slug != "cake-1" {
		t.Errorf("second slug = %q, want cake-1", second.Slug)
	}
}

func TestCreateCakeExplicitSlugConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	if _, err := svc.CreateCake(context.Background(), CakeInput{Name: "Медовик", Slug: "medovyk", Price: models.NewMoneyFromFloat(100)}); err != nil {
		t.Fatalf("CreateCake: %v", err)
	}
	_, err := svc.CreateCake(context.Background(), CakeInput{Name: "Інший", Slug: "medovyk", Price: models.NewMoneyFromFloat(100)})
	if !errors.Is(err, ErrSlugExists) {
		t.Fatalf("err = %v, want ErrSlugExists", err)
	}
}

func TestUpdateCakeKeepsSlugOnRename(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	cake, err := svc.CreateCake(context.Background(), CakeInput{Name: "Наполеон", Price: models.NewMoneyFromFloat(450)})
	if err != nil {
		t.Fatalf("CreateCake: %v", err)
	}

	updated, err := svc.UpdateCake(context.Background(), cake.ID, CakeInput{Name: "Наполеон класичний"})
	if err != nil {
		t.Fatalf("UpdateCake: %v", err)
	}
	if updated.Slug != cake.Slug {
		t.Errorf("slug changed on rename: %q -> %q", cake.Slug, updated.Slug)
	}
	if updated.Name != "Наполеон класичний" {
		t.Errorf("name = %q", updated.Name)
	}
}

func TestMigrateSlugsBackfillsAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	// Legacy rows without slugs, plus one already slugged.
	legacy := []models.Cake{
		{Name: "Торт «Наполеон»", Price: models.NewMoneyFromFloat(450)},
		{Name: "Торт", Price: models.NewMoneyFromFloat(100)},
		{Name: "Торт", Price: models.NewMoneyFromFloat(120)},
		{Name: "Медовик", Slug: "medovyk", Price: models.NewMoneyFromFloat(380)},
	}
	for i := range legacy {
		if err := db.Create(&legacy[i]).Error; err != nil {
			t.Fatalf("seed legacy cake: %v", err)
		}
	}

	updated, err := svc.MigrateSlugs(context.Background())
	if err != nil {
		t.Fatalf("MigrateSlugs: %v", err)
	}
	if updated != 3 {
		t.Errorf("updated = %d, want 3", updated)
	}

	var cakes []models.Cake
	if err := db.Order("id ASC").Find(&cakes).Error; err != nil {
		t.Fatalf("reload cakes: %v", err)
	}
	wantSlugs := []string{"napoleon", "cake", "cake-1", "medovyk"}
	for i, want := range wantSlugs {
		if cakes[i].Slug != want {
			t.Errorf("cake %d slug = %q, want %q", cakes[i].ID, cakes[i].Slug, want)
		}
	}

	// Second run must change nothing.
	updated, err = svc.MigrateSlugs(context.Background())
	if err != nil {
		t.Fatalf("second MigrateSlugs: %v", err)
	}
	if updated != 0 {
		t.Errorf("second run updated = %d, want 0", updated)
	}

	var after []models.Cake
	if err := db.Order("id ASC").Find(&after).Error; err != nil {
		t.Fatalf("reload cakes: %v", err)
	}
	for i := range after {
		if after[i].Slug != cakes[i].Slug {
			t.Errorf("slug reassigned on re-run: %q -> %q", cakes[i].Slug, after[i].Slug)
		}
	}
}

func TestCreateCakeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	if _, err := svc.CreateCake(context.Background(), CakeInput{Name: "  "}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("blank name err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.CreateCake(context.Background(), CakeInput{
		Name:  "Наполеон",
		Price: models.NewMoneyFromFloat(-1),
	}); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("negative price err = %v, want ErrValidationFailed", err)
	}
}

func TestGetCakeBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	seedCake(t, db, "Наполеон", "napoleon", 450)

	cake, err := svc.GetCakeBySlug(context.Background(), "napoleon")
	if err != nil {
		t.Fatalf("GetCakeBySlug: %v", err)
	}
	if cake.Name != "Наполеон" {
		t.Errorf("name = %q", cake.Name)
	}

	if _, err := svc.GetCakeBySlug(context.Background(), "missing"); !errors.Is(err, ErrCakeNotFound) {
		t.Errorf("missing slug err = %v, want ErrCakeNotFound", err)
	}
}

func TestCreateCategoryAssignsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	category, err := svc.CreateCategory(context.Background(), CategoryInput{
		Name:        "Бісквітні",
		ImageURL:    "https://cdn.solodko.ua/cat/biscuit.jpg",
		Description: "Класичні бісквітні торти",
		SortOrder:   1,
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.Slug != "biskvitni" {
		t.Errorf("slug = %q, want biskvitni", category.Slug)
	}
	if category.ImageURL == "" || category.Description == "" {
		t.Errorf("category metadata not persisted: %+v", category)
	}
}

func TestCakeCarriesProductDetails(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, repository.NewCakeRepository(db), repository.NewCategoryRepository(db))

	weight := 1500.0
	cake, err := svc.CreateCake(context.Background(), CakeInput{
		Name:        "Медовик",
		Price:       models.NewMoneyFromFloat(380),
		Weight:      &weight,
		Ingredients: "мед, борошно, сметана",
		ShelfLife:   "72 години",
	})
	if err != nil {
		t.Fatalf("CreateCake: %v", err)
	}

	reloaded, err := svc.GetCake(context.Background(), cake.ID)
	if err != nil {
		t.Fatalf("GetCake: %v", err)
	}
	if reloaded.Weight == nil || *reloaded.Weight != weight {
		t.Errorf("weight = %v, want %v", reloaded.Weight, weight)
	}
	if reloaded.Ingredients != "мед, борошно, сметана" {
		t.Errorf("ingredients = %q", reloaded.Ingredients)
	}
	if reloaded.ShelfLife != "72 години" {
		t.Errorf("shelf life = %q", reloaded.ShelfLife)
	}
}
