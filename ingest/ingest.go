// Package ingest turns document files into persisted library books.
//
// Format internals stay with external parser collaborators: the package only
// defines the MetadataExtractor contract they fulfill and the Ingestor that
// drives path checks, duplicate detection, and Book construction around it.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/omnireader/core/entities"
	apperrors "github.com/omnireader/core/errors"
)

// ErrBookExists is returned by AddBook when the file path is already in the
// library. Duplicate ingestion is an expected outcome, not a taxonomy failure.
var ErrBookExists = errors.New("book already in library")

// MetadataExtractor produces book metadata for a single file format. One
// implementation is registered per book type; the core ships none.
type MetadataExtractor interface {
	ExtractMetadata(ctx context.Context, path string) (*entities.BookMetadata, error)
}

// Library is the slice of the store the ingestor needs.
type Library interface {
	InsertBook(book *entities.Book) error
	BookExistsByPath(filePath string) (bool, error)
	UpdateLastRead(id string) error
	GetReadingPosition(bookID string) (*entities.ReadingPosition, error)
}

// Ingestor seeds books from files using the registered extractors.
type Ingestor struct {
	library    Library
	extractors map[entities.BookType]MetadataExtractor
}

// NewIngestor creates an Ingestor over the given library.
func NewIngestor(library Library) *Ingestor {
	return &Ingestor{
		library:    library,
		extractors: make(map[entities.BookType]MetadataExtractor),
	}
}

// RegisterExtractor installs the extractor used for the given book type,
// replacing any previous registration.
func (i *Ingestor) RegisterExtractor(t entities.BookType, extractor MetadataExtractor) {
	i.extractors[t] = extractor
}

// AddBook ingests the file at path into the library and returns the persisted
// book.
//
// Failure taxonomy: a missing file yields FileNotFound, other stat failures
// IoError, an unrecognized extension (or a type with no registered extractor)
// UnsupportedFormat, and extractor failures ParseError unless the extractor
// already returned a taxonomy error. An already-ingested path yields
// ErrBookExists.
func (i *Ingestor) AddBook(ctx context.Context, path string) (*entities.Book, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.CodeFileNotFound, path)
		}
		return nil, apperrors.Wrap(apperrors.CodeIO, fmt.Sprintf("stat %s", path), err)
	}

	ext := filepath.Ext(path)
	bookType, ok := entities.BookTypeFromExtension(ext)
	if !ok {
		return nil, apperrors.New(apperrors.CodeUnsupportedFormat, ext)
	}

	exists, err := i.library.BookExistsByPath(path)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBookExists
	}

	extractor, ok := i.extractors[bookType]
	if !ok {
		return nil, apperrors.New(apperrors.CodeUnsupportedFormat,
			fmt.Sprintf("no extractor registered for %s", bookType))
	}

	metadata, err := extractor.ExtractMetadata(ctx, path)
	if err != nil {
		if _, classified := apperrors.CodeOf(err); classified {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.CodeParse, fmt.Sprintf("extract metadata from %s", path), err)
	}

	title := metadata.Title
	if title == "" {
		title = titleFromFilename(path)
	}

	book := entities.NewBook(title, metadata.Author, path, bookType, metadata.TotalPages)
	book.CoverData = metadata.CoverData

	if err := i.library.InsertBook(book); err != nil {
		return nil, err
	}
	return book, nil
}

// OpenBook records an "open for reading" event for the book and returns the
// stored reading position, or nil if the user never saved one.
func (i *Ingestor) OpenBook(bookID string) (*entities.ReadingPosition, error) {
	if err := i.library.UpdateLastRead(bookID); err != nil {
		return nil, err
	}
	return i.library.GetReadingPosition(bookID)
}

// titleFromFilename falls back to the file's stem when the parser provided no
// title.
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
