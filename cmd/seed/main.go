package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"showcase/internal/config"
	"showcase/internal/db"
	"showcase/internal/model"
	"showcase/internal/repository"
)

// SeedProjectData is the on-disk shape of a demo project.
type SeedProjectData struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Link         string          `json:"link"`
	Technologies []string        `json:"technologies"`
	Position     json.RawMessage `json:"position"`
	Rotation     json.RawMessage `json:"rotation"`
}

func main() {
	log.Println("Starting seed script...")

	gormDB, err := db.NewMySQL(config.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "seed/projects.json"
	}

	items, err := loadSeedFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Loaded %d projects from %s", len(items), seedFile)

	ctx := context.Background()
	owner, err := ensureDemoOwner(ctx, gormDB)
	if err != nil {
		log.Fatalf("Failed to ensure demo owner: %v", err)
	}

	projectRepo := repository.NewProjectRepository(gormDB)
	created, skipped, err := seedProjects(ctx, gormDB, projectRepo, owner.ID, items)
	if err != nil {
		log.Fatalf("Failed to seed projects: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New projects created: %d", created)
	log.Printf("  - Already present (skipped): %d", skipped)
}

// loadSeedFile reads demo projects from a JSON file.
func loadSeedFile(path string) ([]SeedProjectData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []SeedProjectData
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return items, nil
}

// ensureDemoOwner creates the local user row the demo projects hang
// off. Seeded data never touches the identity provider, so the owner id
// is generated here rather than provider-issued.
func ensureDemoOwner(ctx context.Context, gormDB *gorm.DB) (*model.User, error) {
	const demoEmail = "demo@showcase.local"

	var user model.User
	err := gormDB.WithContext(ctx).Where("email = ?", demoEmail).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = model.User{
		ID:    uuid.New().String(),
		Email: demoEmail,
		Name:  "Showcase Demo",
	}
	if err := gormDB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// seedProjects inserts demo projects, skipping titles that already exist.
func seedProjects(ctx context.Context, gormDB *gorm.DB, repo repository.ProjectRepository, ownerID string, items []SeedProjectData) (created, skipped int, err error) {
	for _, item := range items {
		var count int64
		if err := gormDB.WithContext(ctx).Model(&model.Project{}).
			Where("title = ?", item.Title).Count(&count).Error; err != nil {
			return created, skipped, fmt.Errorf("check project %q: %w", item.Title, err)
		}
		if count > 0 {
			skipped++
			continue
		}

		project := &model.Project{
			Title:        item.Title,
			Description:  item.Description,
			Image:        item.Image,
			Link:         item.Link,
			Technologies: model.StringList(item.Technologies),
			Position:     model.JSONText(item.Position),
			Rotation:     model.JSONText(item.Rotation),
			UserID:       ownerID,
		}
		if err := repo.Create(ctx, project); err != nil {
			return created, skipped, fmt.Errorf("create project %q: %w", item.Title, err)
		}
		created++
	}
	return created, skipped, nil
}
