package models

import "time"

// Roles a user document can carry. A profile is created with RoleUser on first
// upsert; the upsert path never changes an existing role.
const (
	RoleUser      = "user"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)

// User is a profile document in the users collection, keyed by email.
type User struct {
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	PhotoURL  string    `json:"photoURL" firestore:"photoURL"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
