// Package metadata is the key-value layer of the local store. Every
// persisted preference (user record, theme, language, first-run marker)
// is one row of the metadata table.
package metadata

import (
	"context"
)

// Repository is the key-value contract. Get returns common.ErrorNotFound
// for an absent key; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
