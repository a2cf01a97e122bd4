package entities

import "time"

// ReadingPosition is the user's current place in a book. At most one row
// exists per book; saving again replaces it in place.
type ReadingPosition struct {
	BookID     string  `gorm:"primaryKey;size:36" json:"book_id"`
	Percent    float64 `gorm:"not null" json:"percent"` // 0.0 - 100.0
	PageNumber uint32  `gorm:"not null" json:"page_number"`
	UpdatedAt  int64   `gorm:"not null" json:"updated_at"`
}

func (ReadingPosition) TableName() string {
	return "reading_positions"
}

// NewReadingPosition stamps the update time to now.
func NewReadingPosition(bookID string, percent float64, pageNumber uint32) *ReadingPosition {
	return &ReadingPosition{
		BookID:     bookID,
		Percent:    percent,
		PageNumber: pageNumber,
		UpdatedAt:  time.Now().Unix(),
	}
}
