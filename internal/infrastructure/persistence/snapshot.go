package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/odanga/stockledger-api/internal/domain/entity"
	"github.com/odanga/stockledger-api/internal/infrastructure/store"
)

// FileStore persists the whole application state as one JSON document.
// Malformed data is never fatal: a field that does not parse is logged and
// left at its empty default, so a corrupted snapshot degrades to partial
// (or empty) state instead of crashing the engine.
type FileStore struct {
	path string
}

// NewFileStore creates a snapshot store at the given path. Parent
// directories are created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and deserializes the snapshot. A missing file yields an empty
// snapshot. Each top-level field is decoded independently; anything that is
// not array-shaped is logged and skipped.
func (f *FileStore) Load() store.Snapshot {
	var snap store.Snapshot

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", f.path).Msg("snapshot unreadable, starting empty")
		}
		return snap
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Str("path", f.path).Msg("snapshot malformed, starting empty")
		return snap
	}

	if field, ok := raw["products"]; ok {
		if err := json.Unmarshal(field, &snap.Products); err != nil {
			log.Warn().Err(err).Msg("snapshot field 'products' malformed, ignoring")
			snap.Products = nil
		}
	}
	if field, ok := raw["sales"]; ok {
		if err := json.Unmarshal(field, &snap.Sales); err != nil {
			log.Warn().Err(err).Msg("snapshot field 'sales' malformed, ignoring")
			snap.Sales = nil
		}
	}
	if field, ok := raw["damages"]; ok {
		if err := json.Unmarshal(field, &snap.Damages); err != nil {
			log.Warn().Err(err).Msg("snapshot field 'damages' malformed, ignoring")
			snap.Damages = nil
		}
	}

	return snap
}

// Save overwrites the stored snapshot with the given state. Errors are
// logged, not returned: saves are fire-and-forget and must never fail the
// mutation that triggered them.
func (f *FileStore) Save(snap store.Snapshot) {
	// keep empty collections as [] rather than null in the document
	if snap.Products == nil {
		snap.Products = []entity.Product{}
	}
	if snap.Sales == nil {
		snap.Sales = []entity.Sale{}
	}
	if snap.Damages == nil {
		snap.Damages = []entity.DamageRecord{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("snapshot serialize failed")
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("snapshot dir create failed")
		return
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("snapshot write failed")
	}
}
