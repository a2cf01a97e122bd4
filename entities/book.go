package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookType identifies the file format of a library item.
type BookType string

const (
	BookTypePDF  BookType = "pdf"
	BookTypeEPUB BookType = "epub"
)

// bookTypeByExtension is the fixed extension -> type table. Persisted tokens
// are the lowercase extensions themselves, so declaration order never matters.
var bookTypeByExtension = map[string]BookType{
	"pdf":  BookTypePDF,
	"epub": BookTypeEPUB,
}

// Extension returns the lowercase file extension for this book type.
func (t BookType) Extension() string {
	return string(t)
}

// BookTypeFromExtension parses a book type from a file extension.
// Matching is case-insensitive and tolerates a leading dot. Unrecognized
// extensions return false; the caller decides the fallback.
func BookTypeFromExtension(ext string) (BookType, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	t, ok := bookTypeByExtension[ext]
	return t, ok
}

type Book struct {
	ID       string   `gorm:"primaryKey;size:36" json:"id"`
	Title    string   `gorm:"size:512;not null" json:"title"`
	Author   string   `gorm:"size:256" json:"author,omitempty"`
	FilePath string   `gorm:"uniqueIndex;size:1024;not null" json:"file_path"`
	FileType BookType `gorm:"size:10;not null" json:"file_type"`

	// Raw cover image bytes as handed over by the parser. Encoding is the
	// parser's concern; the store treats this as an opaque blob.
	CoverData []byte `gorm:"type:blob" json:"-"`

	// Timestamps as unix seconds. AddedAt is set once at construction,
	// LastReadAt is bumped on every "open for reading" event.
	AddedAt    int64  `gorm:"not null" json:"added_at"`
	LastReadAt *int64 `json:"last_read_at,omitempty"`

	// Total pages for PDF, chapters for EPUB.
	TotalPages uint32 `gorm:"not null;default:0" json:"total_pages"`

	// Dependent rows, declared for the cascading foreign keys. Never
	// preloaded: books returned by the store are independent copies.
	Annotations []Annotation     `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
	Position    *ReadingPosition `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

// NewBook creates a library item with a generated UUID and the added-at
// timestamp stamped to now. Cover data and last-read time start empty.
// The file path is taken as-is; existence was already confirmed by the caller.
func NewBook(title, author, filePath string, fileType BookType, totalPages uint32) *Book {
	return &Book{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     author,
		FilePath:   filePath,
		FileType:   fileType,
		AddedAt:    time.Now().Unix(),
		TotalPages: totalPages,
	}
}

// BookMetadata is the single shape the core consumes from document parsers.
// Empty strings and nil bytes mean "not provided"; the ingestion layer
// decides fallbacks.
type BookMetadata struct {
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	CoverData  []byte `json:"-"`
	TotalPages uint32 `json:"total_pages"`
}
