package highlights

import (
	"context"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

// BadgerConfig contains configuration for the local highlight store
type BadgerConfig struct {
	// Dir is the database directory. Empty runs badger in memory.
	Dir string
}

// BadgerRepository stores highlights in an embedded badger database.
// It is the local, single-machine counterpart of the Redis repository.
type BadgerRepository struct {
	db *badger.DB
}

// Ensure BadgerRepository implements Repository
var _ Repository = (*BadgerRepository)(nil)

// NewBadger opens (or creates) the badger database
func NewBadger(cfg *BadgerConfig) (*BadgerRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.Dir == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create highlight store directory %s", cfg.Dir)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open highlight store")
	}

	return &BadgerRepository{db: db}, nil
}

// Close releases the database
func (r *BadgerRepository) Close() error {
	return r.db.Close()
}

// Load returns the ids stored for the player
func (r *BadgerRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	var ids []string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(r.buildKey(input.PlayerID))
		if err == badger.ErrKeyNotFound {
			ids = []string{}
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "badger get operation")
		}

		return item.Value(func(val []byte) error {
			decoded, err := decode(val)
			if err != nil {
				return err
			}
			ids = decoded
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load highlights for player %s", input.PlayerID)
	}

	return &LoadOutput{ItemIDs: ids}, nil
}

// Save overwrites the ids stored for the player
func (r *BadgerRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := encode(input.ItemIDs)
	if err != nil {
		return nil, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.buildKey(input.PlayerID), data)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save highlights for player %s", input.PlayerID)
	}

	return &SaveOutput{Data: data}, nil
}

func (r *BadgerRepository) buildKey(playerID string) []byte {
	return []byte(StorageKey + ":" + playerID)
}
