package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bookorbit-backend-go/internal/db"
	"bookorbit-backend-go/internal/models"
)

// In-memory repositories implementing the db interfaces, mirroring the
// semantics the Firestore implementations provide.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *models.User) (*models.User, error) {
	stored := *user
	if existing, ok := r.users[user.Email]; ok {
		stored.Role = existing.Role
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.Role = models.RoleUser
		stored.CreatedAt = time.Now().UTC()
	}
	r.users[user.Email] = &stored
	out := stored
	return &out, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, db.ErrNotFound)
	}
	out := *user
	return &out, nil
}

type fakeBookRepo struct {
	books   map[string]*models.Book
	patches map[string]map[string]interface{}
	nextID  int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		books:   make(map[string]*models.Book),
		patches: make(map[string]map[string]interface{}),
	}
}

func (r *fakeBookRepo) Create(_ context.Context, book *models.Book) (string, error) {
	r.nextID++
	id := fmt.Sprintf("book-%d", r.nextID)
	stored := *book
	stored.ID = id
	r.books[id] = &stored
	return id, nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id string) (*models.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, fmt.Errorf("book %q: %w", id, db.ErrNotFound)
	}
	out := *book
	return &out, nil
}

func (r *fakeBookRepo) List(_ context.Context, status string) ([]*models.Book, error) {
	books := make([]*models.Book, 0)
	for _, book := range r.books {
		if status != "" && book.Status != status {
			continue
		}
		out := *book
		books = append(books, &out)
	}
	return books, nil
}

func (r *fakeBookRepo) ListByLibrarian(_ context.Context, email string) ([]*models.Book, error) {
	books := make([]*models.Book, 0)
	for _, book := range r.books {
		if book.LibrarianEmail == email {
			out := *book
			books = append(books, &out)
		}
	}
	return books, nil
}

func (r *fakeBookRepo) Patch(_ context.Context, id string, patch map[string]interface{}) error {
	r.patches[id] = patch
	if book, ok := r.books[id]; ok {
		if s, ok := patch["status"].(string); ok {
			book.Status = s
		}
		if n, ok := patch["name"].(string); ok {
			book.Name = n
		}
	}
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id string) error {
	delete(r.books, id)
	return nil
}

type fakeOrderRepo struct {
	docs   map[string]map[string]interface{}
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{docs: make(map[string]map[string]interface{})}
}

func (r *fakeOrderRepo) Create(_ context.Context, doc map[string]interface{}) (string, error) {
	r.nextID++
	id := fmt.Sprintf("order-%d", r.nextID)
	stored := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		stored[k] = v
	}
	r.docs[id] = stored
	return id, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("order %q: %w", id, db.ErrNotFound)
	}
	order := &models.Order{ID: id}
	if v, ok := doc["userEmail"].(string); ok {
		order.UserEmail = v
	}
	if v, ok := doc["status"].(string); ok {
		order.Status = v
	}
	if v, ok := doc["paymentStatus"].(string); ok {
		order.PaymentStatus = v
	}
	if v, ok := doc["orderDate"].(time.Time); ok {
		order.OrderDate = v
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, email string) ([]map[string]interface{}, error) {
	orders := make([]map[string]interface{}, 0)
	for id, doc := range r.docs {
		if doc["userEmail"] != email {
			continue
		}
		out := make(map[string]interface{}, len(doc)+1)
		for k, v := range doc {
			out[k] = v
		}
		out["_id"] = id
		orders = append(orders, out)
	}
	sort.Slice(orders, func(i, j int) bool {
		ti, _ := orders[i]["orderDate"].(time.Time)
		tj, _ := orders[j]["orderDate"].(time.Time)
		return ti.After(tj)
	})
	return orders, nil
}

func (r *fakeOrderRepo) SetStatus(_ context.Context, id, status string) error {
	doc, ok := r.docs[id]
	if !ok {
		return fmt.Errorf("order %q: %w", id, db.ErrNotFound)
	}
	doc["status"] = status
	return nil
}
