package core

import "bookorbit-backend-go/internal/models"

// Authorization rules live here as pure functions over caller identity and
// entity state, one predicate per resource.

// CanManageCatalog reports whether a role may create catalog entries.
func CanManageCatalog(role string) bool {
	return role == models.RoleLibrarian || role == models.RoleAdmin
}

// CanModifyBook reports whether the caller may update or delete the book:
// admins always, otherwise only the owning librarian.
func CanModifyBook(callerEmail, callerRole string, book *models.Book) bool {
	if callerRole == models.RoleAdmin {
		return true
	}
	return book.LibrarianEmail == callerEmail
}

// CanCancelOrder reports whether the caller owns the order. Ownership is
// checked before order state so a foreign caller sees Forbidden regardless of
// status.
func CanCancelOrder(callerEmail string, order *models.Order) bool {
	return order.UserEmail == callerEmail
}
