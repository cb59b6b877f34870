package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"project-intake-backend/internal/config"
	"project-intake-backend/internal/database"
	"project-intake-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MentorData struct {
	Name  string `yaml:"name"`
	Dept  string `yaml:"dept"`
	Email string `yaml:"email"`
}

type ArchivedProjectData struct {
	Title    string `yaml:"title"`
	Synopsis string `yaml:"synopsis"`
}

type MentorsFile struct {
	Mentors []MentorData `yaml:"mentors"`
}

type ArchivedProjectsFile struct {
	Projects []ArchivedProjectData `yaml:"projects"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded. Run cmd/indexer to rebuild the similarity index.")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var mentorFiles []MentorsFile
	if err := readYAMLFiles(dataDir, "mentors", &mentorFiles); err != nil {
		return fmt.Errorf("failed to load mentors: %w", err)
	}
	var projectFiles []ArchivedProjectsFile
	if err := readYAMLFiles(dataDir, "archived_projects", &projectFiles); err != nil {
		return fmt.Errorf("failed to load archived projects: %w", err)
	}

	mentorsCreated, mentorsTotal := 0, 0
	for _, f := range mentorFiles {
		for _, m := range f.Mentors {
			mentorsTotal++
			created, err := createMentor(db, m)
			if err != nil {
				return fmt.Errorf("failed to create mentor %s: %w", m.Email, err)
			}
			if created {
				mentorsCreated++
			}
		}
	}
	log.Printf("Mentors: %d created, %d total", mentorsCreated, mentorsTotal)

	projectsCreated, projectsTotal := 0, 0
	for _, f := range projectFiles {
		for _, p := range f.Projects {
			projectsTotal++
			created, err := createArchivedProject(db, p)
			if err != nil {
				log.Printf("Warning: failed to create archived project %q: %v", p.Title, err)
				continue
			}
			if created {
				projectsCreated++
			}
		}
	}
	log.Printf("Archived projects: %d created, %d total", projectsCreated, projectsTotal)

	return nil
}

// readYAMLFiles decodes every .yaml file under dataDir whose path contains kind
func readYAMLFiles[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func createMentor(db *gorm.DB, data MentorData) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var existing models.Teacher
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return true, db.Create(&models.Teacher{
		Name:  strings.TrimSpace(data.Name),
		Dept:  strings.TrimSpace(data.Dept),
		Email: email,
	}).Error
}

func createArchivedProject(db *gorm.DB, data ArchivedProjectData) (bool, error) {
	title := strings.TrimSpace(data.Title)
	if title == "" {
		return false, fmt.Errorf("title is required")
	}

	var existing models.ArchivedProject
	err := db.Where("title = ?", title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return true, db.Create(&models.ArchivedProject{
		Title:    title,
		Synopsis: strings.TrimSpace(data.Synopsis),
	}).Error
}
