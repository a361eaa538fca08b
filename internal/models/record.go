package models

import (
	"fmt"
	"time"
)

// Kind identifies one of the three record collections.
type Kind string

// Record kinds.
const (
	KindJournal Kind = "journal"
	KindBook    Kind = "book"
	KindStory   Kind = "story"
)

// Kinds lists every record kind in dashboard order.
var Kinds = []Kind{KindJournal, KindBook, KindStory}

// ParseKind converts a route segment into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindJournal, KindBook, KindStory:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown record kind %q", s)
	}
}

// Table returns the table that stores records of this kind.
func (k Kind) Table() string {
	switch k {
	case KindJournal:
		return "journals"
	case KindBook:
		return "books"
	case KindStory:
		return "stories"
	default:
		return ""
	}
}

// ListPath is the route that lists records of this kind.
func (k Kind) ListPath() string {
	return "/" + string(k)
}

// Label is the human readable resource name used in error messages.
func (k Kind) Label() string {
	switch k {
	case KindJournal:
		return "Journal"
	case KindBook:
		return "Book"
	case KindStory:
		return "Story"
	default:
		return "Record"
	}
}

// Record is a journal, book or story entry. The three kinds share one shape
// but live in separate tables; Checked is only persisted for books.
type Record struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	OwnerID   uint      `gorm:"column:authorid;not null;index" json:"owner_id"`
	Checked   bool      `gorm:"column:checked;->" json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dashboard aggregates every record owned by one user.
type Dashboard struct {
	Journals []Record `json:"journals"`
	Books    []Record `json:"books"`
	Stories  []Record `json:"stories"`
}
