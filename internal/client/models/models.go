// Package models contains the canonical client-side shapes of the site's
// content entities. Backend responses with heterogeneous field naming are
// normalized into these types at the service boundary; nothing above that
// boundary ever sees a raw payload.
package models

import "strings"

// ContactMessage is one inbound inquiry as rendered in the management panel.
type ContactMessage struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// DisplayName computes the name shown next to a message: first+last names
// when present, the bare display name as a fallback, and "Unknown" when all
// name fields are absent.
func (m ContactMessage) DisplayName() string {
	first := m.FirstName
	if first == "" {
		first = m.Name
	}
	if first == "" && m.LastName == "" {
		return "Unknown"
	}
	return strings.TrimSpace(first + " " + m.LastName)
}

// ContactDraft is the client-only state of the public contact form prior to
// submission. Email and Message are required; names are optional.
type ContactDraft struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// NewsArticle is a publishable content item in canonical form.
type NewsArticle struct {
	ID       int64
	Title    string
	Excerpt  string
	Content  string
	Category string
	// PDFURL references the attached document, empty when none exists.
	PDFURL string
	// ReadTime is a display label like "4 min read".
	ReadTime string
	Date     string
}

// IsPDF reports whether the article carries an attachment. The flag is
// derived from the attachment reference and never set independently.
func (n NewsArticle) IsPDF() bool {
	return n.PDFURL != ""
}

// Paragraphs splits the article content on blank lines.
func (n NewsArticle) Paragraphs() []string {
	if n.Content == "" {
		return nil
	}
	return strings.Split(n.Content, "\n\n")
}

// DraftFile is an in-memory file attached to a news draft.
type DraftFile struct {
	Name string
	Data []byte
}

// NewsDraft is the client-only state of the article creation form.
type NewsDraft struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	PDF      *DraftFile
}

// Reset returns the draft to its empty state. Used when the creation form
// opens, and again on cancel.
func (d *NewsDraft) Reset() {
	*d = NewsDraft{}
}
