package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/univault/univault-api/config"
	"github.com/univault/univault-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GORMStore wraps a GORM connection and hands out persistent record stores
// satisfying the same contracts as the in-memory ones.
type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL.
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:      gormLogger,
		PrepareStmt: true,
	})
	if err != nil {
		log.Println("Unable to connect to PostgreSQL with GORM:", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &GORMStore{db: db}, nil
}

// Init runs schema migrations for the catalogue tables.
func (s *GORMStore) Init() error {
	return s.db.AutoMigrate(&model.Research{}, &model.Institution{})
}

// Close closes the underlying database connection.
func (s *GORMStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Research returns the persistent research store.
func (s *GORMStore) Research() ResearchStore {
	return &gormResearchStore{db: s.db}
}

// Institutions returns the persistent institution store.
func (s *GORMStore) Institutions() InstitutionStore {
	return &gormInstitutionStore{db: s.db}
}

type gormResearchStore struct {
	db *gorm.DB
}

func (s *gormResearchStore) Put(ctx context.Context, rec model.Research) error {
	return s.db.WithContext(ctx).Save(&rec).Error
}

func (s *gormResearchStore) Get(ctx context.Context, id string) (model.Research, error) {
	var rec model.Research
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Research{}, ErrNotFound
	}
	return rec, err
}

func (s *gormResearchStore) List(ctx context.Context) ([]model.Research, error) {
	var recs []model.Research
	// created_at approximates insertion order across restarts.
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&recs).Error
	return recs, err
}

func (s *gormResearchStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Research{}, "id = ?", id).Error
}

type gormInstitutionStore struct {
	db *gorm.DB
}

func (s *gormInstitutionStore) Put(ctx context.Context, inst model.Institution) error {
	return s.db.WithContext(ctx).Save(&inst).Error
}

func (s *gormInstitutionStore) Get(ctx context.Context, id string) (model.Institution, error) {
	var inst model.Institution
	err := s.db.WithContext(ctx).First(&inst, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Institution{}, ErrNotFound
	}
	return inst, err
}

func (s *gormInstitutionStore) List(ctx context.Context) ([]model.Institution, error) {
	var insts []model.Institution
	err := s.db.WithContext(ctx).Order("name ASC").Find(&insts).Error
	return insts, err
}

func (s *gormInstitutionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&model.Institution{}, "id = ?", id).Error
}
