package config

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// ItemStore is the part of gdata.Manager the saved settings use.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
	DeleteItem(itemKey string) error
	ItemExists(itemKey string) bool
}

var _ ItemStore = (*gdata.Manager)(nil)

// OpenStore opens the per-user data store for the app.
func OpenStore() (*gdata.Manager, error) {
	return gdata.Open(gdata.Config{
		AppName: AppName,
	})
}

// ClearItem removes key from s. A missing item is not an error.
func ClearItem(s ItemStore, key string) error {
	if !s.ItemExists(key) {
		return nil
	}
	if err := s.DeleteItem(key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
