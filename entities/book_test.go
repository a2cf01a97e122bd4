package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want BookType
		ok   bool
	}{
		{"pdf", BookTypePDF, true},
		{"PDF", BookTypePDF, true},
		{".pdf", BookTypePDF, true},
		{"epub", BookTypeEPUB, true},
		{".EPUB", BookTypeEPUB, true},
		{"mobi", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := BookTypeFromExtension(tt.ext)
		assert.Equal(t, tt.ok, ok, "extension %q", tt.ext)
		assert.Equal(t, tt.want, got, "extension %q", tt.ext)
	}
}

func TestBookType_ExtensionRoundTrip(t *testing.T) {
	for _, bookType := range []BookType{BookTypePDF, BookTypeEPUB} {
		parsed, ok := BookTypeFromExtension(bookType.Extension())
		require.True(t, ok)
		assert.Equal(t, bookType, parsed)
	}
}

func TestNewBook(t *testing.T) {
	before := time.Now().Unix()
	book := NewBook("Test Book", "Test Author", "/books/test.pdf", BookTypePDF, 100)
	after := time.Now().Unix()

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "Test Book", book.Title)
	assert.Equal(t, "Test Author", book.Author)
	assert.Equal(t, "/books/test.pdf", book.FilePath)
	assert.Equal(t, BookTypePDF, book.FileType)
	assert.Equal(t, uint32(100), book.TotalPages)
	assert.GreaterOrEqual(t, book.AddedAt, before)
	assert.LessOrEqual(t, book.AddedAt, after)
	assert.Nil(t, book.LastReadAt)
	assert.Nil(t, book.CoverData)
}

func TestNewBook_UniqueIDs(t *testing.T) {
	first := NewBook("A", "", "/a.pdf", BookTypePDF, 1)
	second := NewBook("A", "", "/a.pdf", BookTypePDF, 1)

	assert.NotEqual(t, first.ID, second.ID)
}
