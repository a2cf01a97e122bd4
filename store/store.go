package store

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/omnireader/core/entities"
	apperrors "github.com/omnireader/core/errors"
)

// Store is the durable home of books, annotations, and reading positions.
// All access goes through one logical SQLite connection guarded by a mutex,
// so every operation is serialized and individually atomic.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

// Open opens (or creates) the store at the given path and initializes the
// schema. Opening an already-initialized store is a no-op for the schema.
func Open(path string) (*Store, error) {
	s, err := open(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Store initialized at %s", path)
	return s, nil
}

// OpenInMemory opens a transient in-memory store, primarily for tests.
func OpenInMemory() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "open database", err)
	}

	// Pin the pool to a single connection so the PRAGMAs below stick and
	// the mutex above is the only arbiter of access order.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "access connection pool", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	// Cascading deletes depend on SQLite actually enforcing foreign keys.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "enable foreign keys", err)
	}
	if dsn != ":memory:" {
		if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, apperrors.Wrap(apperrors.CodeDatabase, "enable WAL", err)
		}
		if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
			return nil, apperrors.Wrap(apperrors.CodeDatabase, "set busy timeout", err)
		}
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Annotation{},
		&entities.ReadingPosition{},
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "migrate schema", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlDB, err := s.db.DB()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, "access connection pool", err)
	}
	return sqlDB.Close()
}

// === Book operations ===

// InsertBook adds a book to the library. Inserting a second book with the
// same file path fails with a Database error from the uniqueness constraint.
func (s *Store) InsertBook(book *entities.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Create(book).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("insert book %s", book.ID), err)
	}
	return nil
}

// GetAllBooks returns every book, most recently added first.
func (s *Store) GetAllBooks() ([]entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var books []entities.Book
	if err := s.db.Order("added_at DESC").Find(&books).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, "list books", err)
	}
	return books, nil
}

// GetBook returns the book with the given id, or nil if no such book exists.
// Absence is not an error.
func (s *Store) GetBook(id string) (*entities.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var book entities.Book
	err := s.db.Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("get book %s", id), err)
	}
	return &book, nil
}

// BookExistsByPath reports whether a book with the given file path is already
// in the library. Callers use this to avoid duplicate ingestion before
// constructing a Book.
func (s *Store) BookExistsByPath(filePath string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	err := s.db.Model(&entities.Book{}).Where("file_path = ?", filePath).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.CodeDatabase, "check book path", err)
	}
	return count > 0, nil
}

// DeleteBook removes a book. The declared cascades remove all its annotations
// and its reading position as part of the same atomic delete. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteBook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("id = ?", id).Delete(&entities.Book{}).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("delete book %s", id), err)
	}
	return nil
}

// UpdateLastRead stamps the book's last-read time to now. Unknown ids are a
// no-op, not an error.
func (s *Store) UpdateLastRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Model(&entities.Book{}).
		Where("id = ?", id).
		Update("last_read_at", time.Now().Unix()).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("update last read %s", id), err)
	}
	return nil
}

// === Annotation operations ===

// InsertAnnotation adds a highlight or note. The annotation's book id must
// reference an existing book; otherwise the foreign key rejects the insert
// with a Database error.
func (s *Store) InsertAnnotation(annotation *entities.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Create(annotation).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("insert annotation %s", annotation.ID), err)
	}
	return nil
}

// GetAnnotations returns the book's annotations ordered by ascending start
// percent. A book with no annotations yields an empty slice.
func (s *Store) GetAnnotations(bookID string) ([]entities.Annotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var annotations []entities.Annotation
	err := s.db.Where("book_id = ?", bookID).
		Order("start_percent ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("list annotations for %s", bookID), err)
	}
	return annotations, nil
}

// DeleteAnnotation removes one annotation. Unknown ids are a no-op.
func (s *Store) DeleteAnnotation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("id = ?", id).Delete(&entities.Annotation{}).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("delete annotation %s", id), err)
	}
	return nil
}

// === Reading position operations ===

// SaveReadingPosition upserts the position for its book: the first save
// inserts, every later save overwrites percent, page number, and update time
// in place. The conflict resolution runs as one statement under the lock, so
// concurrent saves for the same book can never produce two rows; the last
// write by lock order wins.
func (s *Store) SaveReadingPosition(position *entities.ReadingPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"percent", "page_number", "updated_at"}),
	}).Create(position).Error
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("save reading position for %s", position.BookID), err)
	}
	return nil
}

// GetReadingPosition returns the book's position, or nil if none was ever
// saved. Absence is not an error.
func (s *Store) GetReadingPosition(bookID string) (*entities.ReadingPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var position entities.ReadingPosition
	err := s.db.Where("book_id = ?", bookID).First(&position).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDatabase, fmt.Sprintf("get reading position for %s", bookID), err)
	}
	return &position, nil
}

// === Error classification helpers ===

// IsUniquenessViolation reports whether err was caused by a SQLite UNIQUE
// constraint failure, e.g. inserting a book whose file path is already taken.
func IsUniquenessViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// IsForeignKeyViolation reports whether err was caused by a SQLite FOREIGN
// KEY constraint failure, e.g. an annotation referencing an unknown book.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
