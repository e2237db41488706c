package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a store bundle prepared for a feed: descriptions are plain text and
// links are absolute.
type Entry struct {
	ID               uuid.UUID
	Title            string
	SubTitle         string
	Link             string
	Description      string
	ExtraDescription string
	PromoDescription string
	ImageURL         string
	PromoImageURL    string
	Language         string
	CreatedAt        time.Time
}

// FullTitle returns the title with the sub text appended, if any.
func (e *Entry) FullTitle() string {
	if e.SubTitle == "" || strings.EqualFold(e.SubTitle, e.Title) {
		return e.Title
	}
	return fmt.Sprintf("%s (%s)", e.Title, e.SubTitle)
}

// FullDescription joins the non-empty descriptions, skipping repeats of the title.
func (e *Entry) FullDescription() string {
	var parts []string
	for _, p := range []string{e.Description, e.ExtraDescription, e.PromoDescription} {
		if p == "" || strings.EqualFold(p, e.Title) {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Valorant store bundle %s", e.Title)
	}
	return strings.Join(parts, " - ")
}

// GUID is stable per bundle and language.
func (e *Entry) GUID() string {
	return fmt.Sprintf("valorant-bundle-%s-%s", strings.ToLower(e.Language), e.ID)
}

// IsValid checks if the entry can be published.
func (e *Entry) IsValid() bool {
	return e.ID != uuid.Nil && e.Title != "" && e.Link != ""
}
