// Package models holds the server-side database entities.
package models

import "time"

// Admin is a management account. The password itself is never stored; only
// an argon2id-derived verifier and the per-account salt are.
type Admin struct {
	ID       string
	UserName string
	Salt     []byte
	Verifier []byte
}

// ContactMessage is one inquiry received through the public contact form.
type ContactMessage struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewsArticle is a publishable content item. PDFKey is the storage key of the
// attached document, empty when there is none; PDFURL is the public URL the
// storage backend returned for that key.
type NewsArticle struct {
	ID        int64
	Title     string
	Excerpt   string
	Content   string
	Category  string
	PDFKey    string
	PDFURL    string
	ReadTime  int
	CreatedAt time.Time
}
