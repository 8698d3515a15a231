package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// KVR persists JSON blobs by key in the kv_store table.
type KVR struct {
	db  QueryI
	now func() time.Time
}

func NewKVRepository(db QueryI) *KVR {
	return &KVR{
		db:  db,
		now: time.Now,
	}
}

func (k *KVR) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := k.db.Rebind(`SELECT payload FROM kv_store WHERE storage_key = ?`)

	var payload string
	err := k.db.GetContext(ctx, &payload, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load key %s: %w", key, err)
	}

	return []byte(payload), true, nil
}

func (k *KVR) Save(ctx context.Context, key string, value []byte) error {
	query := k.db.Rebind(`INSERT INTO kv_store (storage_key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (storage_key)
		DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`)

	_, err := k.db.ExecContext(ctx, query, key, string(value), k.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}

	return nil
}

func (k *KVR) Delete(ctx context.Context, key string) error {
	query := k.db.Rebind(`DELETE FROM kv_store WHERE storage_key = ?`)

	_, err := k.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}
