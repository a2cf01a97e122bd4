package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnnotationType distinguishes highlights from notes. The values are the
// canonical tokens persisted by the store.
type AnnotationType string

const (
	AnnotationTypeHighlight AnnotationType = "highlight"
	AnnotationTypeNote      AnnotationType = "note"
)

// HighlightColor is one of the fixed color presets offered to the user.
type HighlightColor string

const (
	ColorYellow HighlightColor = "yellow"
	ColorGreen  HighlightColor = "green"
	ColorBlue   HighlightColor = "blue"
	ColorPink   HighlightColor = "pink"
	ColorOrange HighlightColor = "orange"
)

// Palette lists the presets in display order. Notes default to the first entry.
var Palette = []HighlightColor{ColorYellow, ColorGreen, ColorBlue, ColorPink, ColorOrange}

// colorHex maps each preset to its canonical hex string. The inverse table is
// derived from it so the two can never drift apart.
var colorHex = map[HighlightColor]string{
	ColorYellow: "#FFEB3B",
	ColorGreen:  "#4CAF50",
	ColorBlue:   "#2196F3",
	ColorPink:   "#E91E63",
	ColorOrange: "#FF9800",
}

var colorByHex = func() map[string]HighlightColor {
	m := make(map[string]HighlightColor, len(colorHex))
	for c, hex := range colorHex {
		m[hex] = c
	}
	return m
}()

// Hex returns the canonical hex string for this color.
func (c HighlightColor) Hex() string {
	return colorHex[c]
}

// HighlightColorFromHex parses a palette color from its hex string,
// case-insensitively. Unrecognized strings return false; the caller decides
// the fallback.
func HighlightColorFromHex(hex string) (HighlightColor, bool) {
	c, ok := colorByHex[strings.ToUpper(hex)]
	return c, ok
}

// Annotation is a highlight or note anchored to a book. Annotations are
// immutable once created; editing is delete-then-reinsert.
type Annotation struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	BookID         string         `gorm:"index;size:36;not null" json:"book_id"`
	AnnotationType AnnotationType `gorm:"size:20;not null" json:"annotation_type"`

	// Position within the book as percentages in [0.0, 100.0]. A point note
	// has end == start. Retrieval is ordered by StartPercent.
	StartPercent float64 `gorm:"not null" json:"start_percent"`
	EndPercent   float64 `gorm:"not null" json:"end_percent"`

	// Display hint only, not authoritative for ordering.
	PageNumber uint32 `gorm:"not null" json:"page_number"`

	// Canonical hex string of a palette color.
	Color string `gorm:"size:10;not null" json:"color"`

	SelectedText string `gorm:"type:text" json:"selected_text,omitempty"` // highlights only
	NoteText     string `gorm:"type:text" json:"note_text,omitempty"`     // notes only

	CreatedAt int64 `gorm:"not null" json:"created_at"`
}

func (Annotation) TableName() string {
	return "annotations"
}

// NewHighlight creates a highlight annotation with a generated UUID and the
// creation time stamped to now. The color is resolved to its canonical hex
// string.
func NewHighlight(bookID string, startPercent, endPercent float64, pageNumber uint32, color HighlightColor, selectedText string) *Annotation {
	return &Annotation{
		ID:             uuid.NewString(),
		BookID:         bookID,
		AnnotationType: AnnotationTypeHighlight,
		StartPercent:   startPercent,
		EndPercent:     endPercent,
		PageNumber:     pageNumber,
		Color:          color.Hex(),
		SelectedText:   selectedText,
		CreatedAt:      time.Now().Unix(),
	}
}

// NewNote creates a point note at the given position. End percent is forced
// to the start percent and the color defaults to the palette's first entry.
func NewNote(bookID string, startPercent float64, pageNumber uint32, noteText string) *Annotation {
	return &Annotation{
		ID:             uuid.NewString(),
		BookID:         bookID,
		AnnotationType: AnnotationTypeNote,
		StartPercent:   startPercent,
		EndPercent:     startPercent,
		PageNumber:     pageNumber,
		Color:          Palette[0].Hex(),
		NoteText:       noteText,
		CreatedAt:      time.Now().Unix(),
	}
}
