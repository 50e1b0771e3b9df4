// Package worker runs the background mirror of transaction changes into
// Google Sheets.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/store"
)

// TransactionGetter loads a single transaction by ID.
type TransactionGetter interface {
	Get(ctx context.Context, id string) (core.Transaction, error)
}

// RowAppender appends one transaction row to the mirror.
type RowAppender interface {
	Append(ctx context.Context, t core.Transaction) (string, error)
}

// SyncWorker consumes transaction change events and keeps the spreadsheet
// mirror up to date. The mirror is an append-only journal: delete events are
// acknowledged and skipped, the repository remains the source of truth.
type SyncWorker struct {
	storage TransactionGetter
	rows    RowAppender
	client  *amqp.Client
}

func NewSyncWorker(storage TransactionGetter, rows RowAppender, client *amqp.Client) *SyncWorker {
	return &SyncWorker{
		storage: storage,
		rows:    rows,
		client:  client,
	}
}

// Run consumes until the context is canceled.
func (w *SyncWorker) Run(ctx context.Context) error {
	return w.client.ConsumeTransactionSync(ctx, func(msg *amqp.TransactionSyncMessage) error {
		return w.Handle(ctx, msg)
	})
}

// Handle processes a single sync message. Returning an error requeues the
// delivery.
func (w *SyncWorker) Handle(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	switch msg.Action {
	case amqp.ActionCreate:
		return w.handleCreate(ctx, msg.ID)
	case amqp.ActionDelete:
		slog.InfoContext(ctx, "Skipping delete event, mirror is append-only", "id", msg.ID)
		return nil
	default:
		// Validate() upstream should have caught this; drop rather than loop.
		slog.WarnContext(ctx, "Dropping message with unknown action",
			"id", msg.ID, "action", msg.Action)
		return nil
	}
}

func (w *SyncWorker) handleCreate(ctx context.Context, id string) error {
	t, err := w.storage.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		// Deleted before we got to it; nothing to mirror.
		slog.WarnContext(ctx, "Transaction vanished before sync", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load transaction %s: %w", id, err)
	}

	ref, err := w.rows.Append(ctx, t)
	if err != nil {
		return fmt.Errorf("mirror transaction %s: %w", id, err)
	}

	slog.InfoContext(ctx, "Mirrored transaction to sheet",
		"id", id,
		"row_ref", ref,
		"amount_cents", t.Amount.Cents)
	return nil
}
