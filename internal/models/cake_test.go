package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:models_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestLegacyCakesAllowEmptySlugs(t *testing.T) {
	db := newTestDB(t)

	// Rows created before slugs existed all share an empty slug; the unique
	// index must not treat them as duplicates.
	for i := 0; i < 3; i++ {
		cake := Cake{
			Name:  fmt.Sprintf("Торт %d", i+1),
			Price: NewMoneyFromFloat(100),
		}
		if err := db.Create(&cake).Error; err != nil {
			t.Fatalf("create legacy cake %d: %v", i+1, err)
		}
	}

	var n int64
	if err := db.Model(&Cake{}).Where("slug = ''").Count(&n).Error; err != nil {
		t.Fatalf("count unslugged: %v", err)
	}
	if n != 3 {
		t.Errorf("unslugged cakes = %d, want 3", n)
	}
}

func TestCakeSlugUniqueWhenSet(t *testing.T) {
	db := newTestDB(t)

	first := Cake{Name: "Наполеон", Slug: "napoleon", Price: NewMoneyFromFloat(450)}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first cake: %v", err)
	}

	second := Cake{Name: "Інший", Slug: "napoleon", Price: NewMoneyFromFloat(300)}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("duplicate non-empty slug accepted, want unique violation")
	}
}
