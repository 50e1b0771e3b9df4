package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	ActionCreate = "create"
	ActionDelete = "delete"
)

// TransactionSyncMessage tells the sync worker that a transaction changed.
// It carries only the ID and action; the worker fetches the full record from
// the repository.
type TransactionSyncMessage struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionSyncMessage(id, action string) *TransactionSyncMessage {
	return &TransactionSyncMessage{
		ID:        id,
		Action:    action,
		Timestamp: time.Now(),
	}
}

func (m *TransactionSyncMessage) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("sync message missing transaction id")
	}
	if m.Action != ActionCreate && m.Action != ActionDelete {
		return fmt.Errorf("unknown sync action %q", m.Action)
	}
	return nil
}

func (m *TransactionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionSyncMessageFromJSON(data []byte) (*TransactionSyncMessage, error) {
	var msg TransactionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}
