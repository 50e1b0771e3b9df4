package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

func tx(title string, cents int64) core.Transaction {
	return core.Transaction{
		ID:       core.NewID(),
		Title:    title,
		Amount:   core.Money{Cents: cents},
		Type:     core.Expense,
		Category: "Food",
		Date:     core.NewDate(2025, 8, 20),
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	first := tx("first", 100)
	second := tx("second", 200)
	if err := s.Add(ctx, first); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(ctx, second); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	s := New()
	bad := tx("bad", 0)
	if err := s.Add(context.Background(), bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	keep := tx("keep", 100)
	drop := tx("drop", 200)
	s.Add(ctx, keep)
	s.Add(ctx, drop)

	if err := s.Delete(ctx, drop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	items, _ := s.List(ctx)
	if len(items) != 1 || items[0].ID != keep.ID {
		t.Fatalf("unexpected items after delete: %+v", items)
	}

	if err := s.Delete(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPersistedRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s := NewFromDir(dir)
	a := tx("Groceries", 8550)
	a.Description = "weekly shop"
	b := tx("Rent", 120000)
	s.Add(ctx, a)
	s.Add(ctx, b)
	user := core.User{ID: core.NewID(), Name: "Demo User", Email: "demo@example.com"}
	if err := s.PutUser(ctx, user); err != nil {
		t.Fatalf("put user: %v", err)
	}

	// A fresh store over the same directory sees identical state.
	reloaded := NewFromDir(dir)
	items, err := reloaded.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want, _ := s.List(ctx)
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", items, want)
	}
	got, ok, err := reloaded.GetUser(ctx)
	if err != nil || !ok || got != user {
		t.Fatalf("user round trip failed: %+v ok=%v err=%v", got, ok, err)
	}
}

func TestCorruptSlotsLoadAsEmpty(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{not json"), 0o644)
	os.WriteFile(filepath.Join(dir, "user.json"), []byte("[]"), 0o644)

	s := NewFromDir(dir)
	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("corrupt slot must load empty, got %+v", items)
	}
	if _, ok, _ := s.GetUser(context.Background()); ok {
		t.Fatalf("corrupt user slot must load as no user")
	}
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFromDir(dir)
	s.PutUser(ctx, core.User{ID: "u1", Name: "n", Email: "e"})
	if err := s.DeleteUser(ctx); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, ok, _ := s.GetUser(ctx); ok {
		t.Fatalf("user should be gone")
	}
	// Deleting an absent user is not an error.
	if err := s.DeleteUser(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
