package app

import (
	"fmt"

	"life-slots/internal/config"
	"life-slots/internal/engine"
	"life-slots/internal/slots"
	"life-slots/internal/storage"
)

// Runtime bundles the engine and the slot store a front end drives.
type Runtime struct {
	Engine *engine.Engine
	Slots  *slots.Store

	closeKV func() error
}

// Open wires storage, slots and the engine from cfg. The caller must Close
// the runtime.
func Open(cfg config.Config) (*Runtime, error) {
	var (
		kv      slots.KV
		closeKV = func() error { return nil }
	)
	if cfg.Database.Ephemeral {
		kv = storage.NewMemoryKV()
	} else {
		db, err := storage.OpenSQLiteKV(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open slot database: %w", err)
		}
		kv, closeKV = db, db.Close
	}

	store := slots.NewStore(kv)
	eng, err := engine.New(engine.Options{
		Rows:     cfg.Grid.Rows,
		Cols:     cfg.Grid.Cols,
		Interval: cfg.Interval(),
		Slots:    store,
	})
	if err != nil {
		_ = closeKV()
		return nil, err
	}
	return &Runtime{Engine: eng, Slots: store, closeKV: closeKV}, nil
}

// Close stops the engine and releases the slot database.
func (r *Runtime) Close() error {
	r.Engine.Close()
	return r.closeKV()
}
