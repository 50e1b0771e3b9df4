package worker

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

type fakeGetter struct {
	items map[string]core.Transaction
}

func (f *fakeGetter) Get(_ context.Context, id string) (core.Transaction, error) {
	t, ok := f.items[id]
	if !ok {
		return core.Transaction{}, store.ErrNotFound
	}
	return t, nil
}

type fakeAppender struct {
	appended []core.Transaction
	fail     bool
}

func (f *fakeAppender) Append(_ context.Context, t core.Transaction) (string, error) {
	if f.fail {
		return "", errors.New("sheet unavailable")
	}
	f.appended = append(f.appended, t)
	return "Transactions!A2:G2", nil
}

func TestHandleCreateMirrorsRow(t *testing.T) {
	tx := core.Transaction{
		ID:       "tx-1",
		Title:    "Groceries",
		Amount:   core.Money{Cents: 8500},
		Type:     core.Expense,
		Category: "Food",
		Date:     core.NewDate(2025, 8, 20),
	}
	rows := &fakeAppender{}
	w := NewSyncWorker(&fakeGetter{items: map[string]core.Transaction{"tx-1": tx}}, rows, nil)

	msg := &amqp.TransactionSyncMessage{ID: "tx-1", Action: amqp.ActionCreate}
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(rows.appended) != 1 || rows.appended[0].ID != "tx-1" {
		t.Fatalf("row not mirrored: %+v", rows.appended)
	}
}

func TestHandleCreateVanishedTransaction(t *testing.T) {
	w := NewSyncWorker(&fakeGetter{}, &fakeAppender{}, nil)
	msg := &amqp.TransactionSyncMessage{ID: "gone", Action: amqp.ActionCreate}
	// A transaction deleted before sync is not an error; requeueing would loop.
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("expected nil for vanished transaction, got %v", err)
	}
}

func TestHandleCreateAppendFailureRequeues(t *testing.T) {
	tx := core.Transaction{ID: "tx-1"}
	w := NewSyncWorker(&fakeGetter{items: map[string]core.Transaction{"tx-1": tx}}, &fakeAppender{fail: true}, nil)
	msg := &amqp.TransactionSyncMessage{ID: "tx-1", Action: amqp.ActionCreate}
	if err := w.Handle(context.Background(), msg); err == nil {
		t.Fatalf("append failure must surface so the delivery is requeued")
	}
}

func TestHandleDeleteSkipped(t *testing.T) {
	rows := &fakeAppender{}
	w := NewSyncWorker(&fakeGetter{}, rows, nil)
	msg := &amqp.TransactionSyncMessage{ID: "tx-1", Action: amqp.ActionDelete}
	if err := w.Handle(context.Background(), msg); err != nil {
		t.Fatalf("handle delete: %v", err)
	}
	if len(rows.appended) != 0 {
		t.Fatalf("delete must not append rows")
	}
}
