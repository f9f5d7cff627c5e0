package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// StoreError 持久层错误, Op 为出错的操作名
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("translation store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }

type TranslationStore struct {
	db *gorm.DB
}

func NewTranslationStore(db *gorm.DB) *TranslationStore {
	return &TranslationStore{db: db}
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Translation{})
}

// Create 单行插入, 由数据库分配 ID 和 CreatedAt
func (s *TranslationStore) Create(ctx context.Context, t *Translation) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return &StoreError{Op: "create", Err: err}
	}
	return nil
}

// List 按插入顺序返回全部记录
func (s *TranslationStore) List(ctx context.Context) ([]Translation, error) {
	translations := make([]Translation, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&translations).Error; err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return translations, nil
}

func (s *TranslationStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&Translation{}).Count(&total).Error; err != nil {
		return 0, &StoreError{Op: "count", Err: err}
	}
	return total, nil
}

func (s *TranslationStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}
