package api

// ErrorResponse is the uniform error body: a human-readable message, no
// structured error codes.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InsertResult is returned by create endpoints, in the shape the client reads.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult is returned by mutation endpoints.
type UpdateResult struct {
	ModifiedCount int `json:"modifiedCount"`
}

// RoleResponse is the GET /users/role body.
type RoleResponse struct {
	Role string `json:"role"`
}
