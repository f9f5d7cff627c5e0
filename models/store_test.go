package models

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestTranslationStore_CreateAssignsIDAndTimestamp(t *testing.T) {
	store := NewTranslationStore(newTestDB(t))
	before := time.Now().Add(-time.Second)

	tr := &Translation{SourceLanguage: "en", TargetLanguage: "fr", SourceText: "hello", TargetText: "bonjour"}
	if err := store.Create(context.Background(), tr); err != nil {
		t.Fatalf("create: %v", err)
	}
	if tr.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if tr.CreatedAt.Before(before) {
		t.Errorf("CreatedAt %v not set at write time", tr.CreatedAt)
	}
}

func TestTranslationStore_LongLanguageCodes(t *testing.T) {
	db := newTestDB(t)
	store := NewTranslationStore(db)

	columns, err := db.Migrator().ColumnTypes(&Translation{})
	if err != nil {
		t.Fatalf("column types: %v", err)
	}
	for _, col := range columns {
		if col.Name() != "source_language" && col.Name() != "target_language" {
			continue
		}
		if !strings.EqualFold(col.DatabaseTypeName(), "text") {
			t.Errorf("%s column type = %q, want text", col.Name(), col.DatabaseTypeName())
		}
	}

	code := "x-" + strings.Repeat("private", 20)
	tr := &Translation{SourceLanguage: code, TargetLanguage: code, SourceText: "hello", TargetText: "hello"}
	if err := store.Create(context.Background(), tr); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].SourceLanguage != code || got[0].TargetLanguage != code {
		t.Errorf("language codes not stored intact: %+v", got)
	}
}

func TestTranslationStore_ListEmpty(t *testing.T) {
	store := NewTranslationStore(newTestDB(t))

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 records, got %d", len(got))
	}
}

func TestTranslationStore_ListInsertionOrder(t *testing.T) {
	store := NewTranslationStore(newTestDB(t))
	ctx := context.Background()

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		if err := store.Create(ctx, &Translation{SourceLanguage: "en", TargetLanguage: "de", SourceText: text, TargetText: text + "-de"}); err != nil {
			t.Fatalf("create %q: %v", text, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(texts) {
		t.Fatalf("expected %d records, got %d", len(texts), len(got))
	}
	for i, text := range texts {
		if got[i].SourceText != text {
			t.Errorf("record %d: source_text = %q, want %q", i, got[i].SourceText, text)
		}
		if got[i].TargetText != text+"-de" {
			t.Errorf("record %d: target_text = %q", i, got[i].TargetText)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(texts)) {
		t.Errorf("count = %d, want %d", count, len(texts))
	}
}

func TestTranslationStore_ErrorsAreWrapped(t *testing.T) {
	db := newTestDB(t)
	store := NewTranslationStore(db)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()

	ctx := context.Background()
	checks := map[string]error{
		"create": store.Create(ctx, &Translation{SourceLanguage: "en", TargetLanguage: "fr", SourceText: "x"}),
		"ping":   store.Ping(ctx),
	}
	_, listErr := store.List(ctx)
	checks["list"] = listErr

	for op, err := range checks {
		var se *StoreError
		if !errors.As(err, &se) {
			t.Errorf("%s: expected *StoreError, got %T: %v", op, err, err)
			continue
		}
		if se.Op != op {
			t.Errorf("%s: Op = %q", op, se.Op)
		}
	}
}

func TestTranslationStore_Ping(t *testing.T) {
	store := NewTranslationStore(newTestDB(t))
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("unexpected ping error: %v", err)
	}
}

func TestValidationError(t *testing.T) {
	cause := errors.New("Key: 'TranslationInput.SourceText' Error:Field validation for 'SourceText' failed on the 'required' tag")
	err := NewValidationError(cause)
	if err.Error() != "source_language, target_language, and source_text are required." {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected the bind error to be wrapped")
	}
}
