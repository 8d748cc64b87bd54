package store

import (
	"context"
	"errors"

	"github.com/the-usman/task-back-end/internal/models"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("user not found")

// UserStore is the collection adapter backing the account workflow. It
// exposes exactly the operations the workflow needs: insert with a
// store-generated id, point lookup by id, equality query on the email
// field, and a partial update limited to the password hash.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (string, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
