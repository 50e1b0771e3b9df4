package adapters

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

// SQLiteAdapter routes writes through the TransactionService (so change
// events are published) and reads straight from the repository. It lets the
// HTTP handlers use the SQLite+AMQP backend through the same ports as the
// file backend.
type SQLiteAdapter struct {
	storage *storage.SQLiteRepository
	service *services.TransactionService
}

func NewSQLiteAdapter(storage *storage.SQLiteRepository, service *services.TransactionService) *SQLiteAdapter {
	return &SQLiteAdapter{
		storage: storage,
		service: service,
	}
}

// Add implements store.TransactionWriter.
func (a *SQLiteAdapter) Add(ctx context.Context, t core.Transaction) error {
	return a.service.Create(ctx, t)
}

// List implements store.TransactionLister.
func (a *SQLiteAdapter) List(ctx context.Context) ([]core.Transaction, error) {
	return a.storage.List(ctx)
}

// Delete implements store.TransactionDeleter.
func (a *SQLiteAdapter) Delete(ctx context.Context, id string) error {
	return a.service.Delete(ctx, id)
}

// GetUser implements store.UserStore.
func (a *SQLiteAdapter) GetUser(ctx context.Context) (core.User, bool, error) {
	return a.storage.GetUser(ctx)
}

// PutUser implements store.UserStore.
func (a *SQLiteAdapter) PutUser(ctx context.Context, u core.User) error {
	return a.storage.PutUser(ctx, u)
}

// DeleteUser implements store.UserStore.
func (a *SQLiteAdapter) DeleteUser(ctx context.Context) error {
	return a.storage.DeleteUser(ctx)
}
