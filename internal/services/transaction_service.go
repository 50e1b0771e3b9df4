// Package services orchestrates transaction writes across the SQLite
// repository and the AMQP change feed.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// TransactionService saves to SQLite first, then publishes a sync message.
// The local write is authoritative; a broker failure is logged and swallowed
// so the request never fails because the mirror is behind.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Create saves a transaction locally and publishes a create event.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) error {
	if err := s.storage.Add(ctx, t); err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publish(ctx, t.ID, amqp.ActionCreate); err != nil {
		slog.ErrorContext(ctx, "Failed to publish create message",
			"id", t.ID, "error", err)
	}
	return nil
}

// Delete removes a transaction locally and publishes a delete event.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publish(ctx, id, amqp.ActionDelete); err != nil {
		slog.ErrorContext(ctx, "Failed to publish delete message",
			"id", id, "error", err)
	}
	return nil
}

func (s *TransactionService) publish(ctx context.Context, id, action string) error {
	if s.amqpClient == nil {
		slog.DebugContext(ctx, "AMQP client not available, skipping sync message", "id", id)
		return nil
	}
	return s.amqpClient.PublishTransactionSync(ctx, id, action)
}

// Close closes both storage and AMQP connections.
func (s *TransactionService) Close() error {
	var errs []error

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	return errors.Join(errs...)
}
