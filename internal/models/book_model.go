package models

import "time"

// Book visibility states.
const (
	BookPublished   = "published"
	BookUnpublished = "unpublished"
)

// Book is a catalog document. LibrarianEmail records who created the book and
// is always taken from the authenticated caller, never from client input.
type Book struct {
	ID             string    `json:"_id" firestore:"-"`
	Name           string    `json:"name" firestore:"name"`
	Author         string    `json:"author" firestore:"author"`
	Image          string    `json:"image" firestore:"image"`
	Price          float64   `json:"price" firestore:"price"`
	Status         string    `json:"status" firestore:"status"`
	Description    string    `json:"description" firestore:"description"`
	LibrarianEmail string    `json:"librarianEmail" firestore:"librarianEmail"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`
}
