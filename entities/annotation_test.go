package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightColor_HexRoundTrip(t *testing.T) {
	for _, color := range Palette {
		parsed, ok := HighlightColorFromHex(color.Hex())
		require.True(t, ok, "color %s", color)
		assert.Equal(t, color, parsed)

		// Parsing is case-insensitive.
		parsed, ok = HighlightColorFromHex(strings.ToLower(color.Hex()))
		require.True(t, ok, "color %s lowercase", color)
		assert.Equal(t, color, parsed)
	}
}

func TestHighlightColorFromHex_NoMatch(t *testing.T) {
	_, ok := HighlightColorFromHex("#000000")
	assert.False(t, ok)

	_, ok = HighlightColorFromHex("")
	assert.False(t, ok)
}

func TestNewHighlight(t *testing.T) {
	highlight := NewHighlight("book-1", 10.0, 15.0, 3, ColorGreen, "Selected text")

	assert.NotEmpty(t, highlight.ID)
	assert.Equal(t, "book-1", highlight.BookID)
	assert.Equal(t, AnnotationTypeHighlight, highlight.AnnotationType)
	assert.Equal(t, 10.0, highlight.StartPercent)
	assert.Equal(t, 15.0, highlight.EndPercent)
	assert.Equal(t, uint32(3), highlight.PageNumber)
	assert.Equal(t, ColorGreen.Hex(), highlight.Color)
	assert.Equal(t, "Selected text", highlight.SelectedText)
	assert.Empty(t, highlight.NoteText)
	assert.NotZero(t, highlight.CreatedAt)
}

func TestNewNote(t *testing.T) {
	note := NewNote("book-1", 42.5, 17, "remember this")

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, AnnotationTypeNote, note.AnnotationType)
	assert.Equal(t, 42.5, note.StartPercent)
	assert.Equal(t, 42.5, note.EndPercent, "a point note has end == start")
	assert.Equal(t, Palette[0].Hex(), note.Color, "notes default to the palette's first entry")
	assert.Equal(t, "remember this", note.NoteText)
	assert.Empty(t, note.SelectedText)
}
