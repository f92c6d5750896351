// Package storage implements the key-value persistence primitive every
// Scana store is built on: get/set/remove by string key, values are
// serialized JSON documents.
//
// Each higher-level store owns exactly one key from the namespace below and
// never touches another store's key. The engine behind the interface is
// swappable: SQLite on disk for the real app, an in-memory map for tests.
package storage

import "context"

// Keys of the shared key-value namespace, one per owning store.
const (
	KeySession      = "scana_auth"
	KeyUsers        = "scana_users"
	KeyScanHistory  = "scana_scan_history"
	KeyFavorites    = "scana_favorites"
	KeyUserProfile  = "scana_user_profile"
	KeyLanguage     = "scana_language"
	KeyScanCount    = "scana_scan_count"
	KeyDeviceSecret = "scana_device_secret"
)

// Storage is the asynchronous key-value adapter contract.
//
// Contract:
//   - Get returns (nil, nil) for an absent key; absence is a normal result,
//     not an error.
//   - Set is atomic per key: a failed write must never leave a partial value
//     observable to a subsequent Get.
//   - Remove is idempotent; removing an absent key is not an error.
//
// Failures are reported wrapped around common.ErrStorageUnavailable or
// common.ErrStorageFull so callers can match them with errors.Is.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
