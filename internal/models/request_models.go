package models

// UpsertUserRequest is the PUT /users payload the client sends on every login.
type UpsertUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// CreateBookRequest is the POST /books payload. Price is loosely typed because
// clients send it either as a JSON number or a string; the service coerces it.
type CreateBookRequest struct {
	Name        string      `json:"name"`
	Author      string      `json:"author"`
	Image       string      `json:"image"`
	Price       interface{} `json:"price"`
	Status      string      `json:"status"`
	Description string      `json:"description"`
}
