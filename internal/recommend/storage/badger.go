// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// BackendBadger is the Backend name reported by BadgerStore.
const BackendBadger = "badger"

// Key prefixes for BadgerDB storage
const (
	itemKeyPrefix        = "item:"
	itemSeqKeyPrefix     = "iseq:"
	userKeyPrefix        = "user:"
	interactionKeyPrefix = "ix:"
	userIndexKeyPrefix   = "uix:"
	itemCountKeyPrefix   = "ixitem:"
	profileKeyPrefix     = "profile:"
	seqKey               = "meta:seq"
)

// BadgerOptions configures a BadgerStore.
type BadgerOptions struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Used by tests.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// GCRatio is the value log discard ratio used by Maintain.
	// Default: 0.5.
	GCRatio float64
}

// BadgerStore persists records in BadgerDB.
type BadgerStore struct {
	db      *badger.DB
	owned   bool
	gcRatio float64
	logger  zerolog.Logger

	// writeMu serializes writers so counter updates never conflict.
	writeMu sync.Mutex
}

// Verify interface compliance at compile time.
var (
	_ recommend.Store             = (*BadgerStore)(nil)
	_ recommend.StatsProvider     = (*BadgerStore)(nil)
	_ recommend.Resetter          = (*BadgerStore)(nil)
	_ recommend.ProfileRepository = (*BadgerStore)(nil)
	_ recommend.Maintainer        = (*BadgerStore)(nil)
)

// storedItem is the persisted form of an item.
type storedItem struct {
	recommend.Item
	Seq uint64 `json:"seq"`
}

// OpenBadgerStore opens (or creates) a BadgerDB-backed store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenBadgerStore(opts BadgerOptions, logger zerolog.Logger) (*BadgerStore, error) {
	bopts := badger.DefaultOptions(opts.Path)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = nil // Suppress BadgerDB internal logs
	bopts.SyncWrites = opts.SyncWrites
	if !opts.InMemory {
		bopts.ValueLogFileSize = 64 << 20 // 64MB (smaller than default 1GB)
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := NewBadgerStoreFromDB(db, opts.GCRatio, logger)
	s.owned = true
	return s, nil
}

// NewBadgerStoreFromDB creates a store on an existing BadgerDB connection.
// The caller keeps ownership of db.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerStoreFromDB(db *badger.DB, gcRatio float64, logger zerolog.Logger) *BadgerStore {
	if gcRatio <= 0 || gcRatio >= 1 {
		gcRatio = 0.5
	}
	return &BadgerStore{
		db:      db,
		gcRatio: gcRatio,
		logger:  logger.With().Str("component", "badger_store").Logger(),
	}
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// tsKey maps t onto a non-negative, order-preserving integer.
func tsKey(t time.Time) int64 {
	if t.Before(time.Unix(0, 0)) {
		return 0
	}
	if t.Year() > 2261 {
		return math.MaxInt64
	}
	return t.UnixNano()
}

func interactionKey(ts int64, seq uint64) []byte {
	return fmt.Appendf(nil, "%s%020d:%020d", interactionKeyPrefix, ts, seq)
}

func userIndexPrefix(userID string) []byte {
	return []byte(userIndexKeyPrefix + userID + "\x00")
}

func encodeCount(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// readCount returns the big-endian counter at key, or 0 when absent.
func readCount(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var n uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("counter %s: invalid length %d", key, len(val))
		}
		n = binary.BigEndian.Uint64(val)
		return nil
	})
	return n, err
}

func incrementCount(txn *badger.Txn, key []byte) (uint64, error) {
	n, err := readCount(txn, key)
	if err != nil {
		return 0, err
	}
	n++
	return n, txn.Set(key, encodeCount(n))
}

// getJSON decodes the value at key into v. found is false when the key
// does not exist.
func getJSON(txn *badger.Txn, key []byte, v any) (found bool, err error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// UpsertItem inserts or replaces an item, keeping its insertion sequence.
//
//nolint:gocritic // hugeParam: item stored by value
func (s *BadgerStore) UpsertItem(ctx context.Context, item recommend.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(itemKeyPrefix + item.ItemID)

		var existing storedItem
		found, err := getJSON(txn, key, &existing)
		if err != nil {
			return fmt.Errorf("get item %s: %w", item.ItemID, err)
		}

		seq := existing.Seq
		if !found {
			if seq, err = incrementCount(txn, []byte(seqKey)); err != nil {
				return fmt.Errorf("next sequence: %w", err)
			}
			orderKey := fmt.Appendf(nil, "%s%020d", itemSeqKeyPrefix, seq)
			if err := txn.Set(orderKey, []byte(item.ItemID)); err != nil {
				return fmt.Errorf("set item order: %w", err)
			}
		}

		data, err := json.Marshal(storedItem{Item: item, Seq: seq})
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set item: %w", err)
		}
		return nil
	})
}

// GetItems returns the existing items among ids, in ids order.
func (s *BadgerStore) GetItems(ctx context.Context, ids []string) ([]recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]recommend.Item, 0, len(ids))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			var si storedItem
			found, err := getJSON(txn, []byte(itemKeyPrefix+id), &si)
			if err != nil {
				return fmt.Errorf("get item %s: %w", id, err)
			}
			if found {
				out = append(out, si.Item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// scanItems calls fn for every item in insertion order until fn returns
// false.
func (s *BadgerStore) scanItems(txn *badger.Txn, fn func(item recommend.Item) bool) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(itemSeqKeyPrefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		var id string
		if err := it.Item().Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		var si storedItem
		found, err := getJSON(txn, []byte(itemKeyPrefix+id), &si)
		if err != nil {
			return fmt.Errorf("get item %s: %w", id, err)
		}
		if !found {
			continue
		}
		if !fn(si.Item) {
			return nil
		}
	}
	return nil
}

// AllItems returns up to limit items in insertion order.
func (s *BadgerStore) AllItems(ctx context.Context, limit int) ([]recommend.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []recommend.Item
	err := s.db.View(func(txn *badger.Txn) error {
		return s.scanItems(txn, func(item recommend.Item) bool {
			out = append(out, item)
			return limit <= 0 || len(out) < limit
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return out, nil
}

// PopularityRank returns items outside exclude by interaction count.
func (s *BadgerStore) PopularityRank(ctx context.Context, exclude map[string]struct{}, limit int) ([]recommend.ItemCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []recommend.ItemCount
	err := s.db.View(func(txn *badger.Txn) error {
		var scanErr error
		err := s.scanItems(txn, func(item recommend.Item) bool {
			if _, skip := exclude[item.ItemID]; skip {
				return true
			}
			n, err := readCount(txn, []byte(itemCountKeyPrefix+item.ItemID))
			if err != nil {
				scanErr = err
				return false
			}
			out = append(out, recommend.ItemCount{Item: item, Count: int(n)})
			return true
		})
		if err != nil {
			return err
		}
		return scanErr
	})
	if err != nil {
		return nil, fmt.Errorf("rank items: %w", err)
	}
	return rankByCount(out, limit), nil
}

// AppendInteraction records an interaction and bumps the item count.
//
//nolint:gocritic // hugeParam: in stored by value
func (s *BadgerStore) AppendInteraction(ctx context.Context, in recommend.Interaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal interaction: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		seq, err := incrementCount(txn, []byte(seqKey))
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		ts := tsKey(in.Timestamp)

		key := interactionKey(ts, seq)
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set interaction: %w", err)
		}

		indexKey := fmt.Appendf(userIndexPrefix(in.UserID), "%020d:%020d", ts, seq)
		if err := txn.Set(indexKey, key); err != nil {
			return fmt.Errorf("set user index: %w", err)
		}

		if _, err := incrementCount(txn, []byte(itemCountKeyPrefix+in.ItemID)); err != nil {
			return fmt.Errorf("increment item count: %w", err)
		}
		return nil
	})
}

// RecentForUser returns up to limit interactions of userID, newest first.
func (s *BadgerStore) RecentForUser(ctx context.Context, userID string, limit int) ([]recommend.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []recommend.Interaction
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = userIndexPrefix(userID)
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := append(append([]byte{}, opts.Prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			if limit > 0 && len(out) >= limit {
				break
			}
			ixKey, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var in recommend.Interaction
			found, err := getJSON(txn, ixKey, &in)
			if err != nil {
				return fmt.Errorf("get interaction: %w", err)
			}
			if found {
				out = append(out, in)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recent interactions for %s: %w", userID, err)
	}
	return out, nil
}

// InWindow returns interactions at or after since, oldest first.
func (s *BadgerStore) InWindow(ctx context.Context, since time.Time) ([]recommend.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []recommend.Interaction
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(interactionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		start := fmt.Appendf(nil, "%s%020d", interactionKeyPrefix, tsKey(since))
		for it.Seek(start); it.ValidForPrefix(opts.Prefix); it.Next() {
			var in recommend.Interaction
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &in)
			}); err != nil {
				return err
			}
			if !in.Timestamp.Before(since) {
				out = append(out, in)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("interactions since %s: %w", since.Format(time.RFC3339), err)
	}
	return out, nil
}

// UpsertUser inserts or replaces a user.
//
//nolint:gocritic // hugeParam: user stored by value
func (s *BadgerStore) UpsertUser(ctx context.Context, user recommend.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userKeyPrefix+user.UserID), data)
	})
}

// SaveProfile persists a search intent profile.
func (s *BadgerStore) SaveProfile(ctx context.Context, p *recommend.SearchIntentProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+p.UserID), data)
	})
}

// LoadProfiles returns every persisted profile.
func (s *BadgerStore) LoadProfiles(ctx context.Context) ([]*recommend.SearchIntentProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []*recommend.SearchIntentProfile
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(profileKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			var p recommend.SearchIntentProfile
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return fmt.Errorf("decode profile %s: %w", it.Item().Key(), err)
			}
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	return out, nil
}

// countPrefix counts keys under prefix without reading values.
func countPrefix(txn *badger.Txn, prefix string) int {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	n := 0
	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		n++
	}
	return n
}

// Stats reports record counts.
func (s *BadgerStore) Stats(ctx context.Context) (recommend.StoreStats, error) {
	stats := recommend.StoreStats{Backend: BackendBadger}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	err := s.db.View(func(txn *badger.Txn) error {
		stats.Items = countPrefix(txn, itemKeyPrefix)
		stats.Users = countPrefix(txn, userKeyPrefix)
		stats.Interactions = countPrefix(txn, interactionKeyPrefix)
		return nil
	})
	return stats, err
}

// Reset drops all records, including persisted profiles.
func (s *BadgerStore) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	s.logger.Info().Msg("badger store reset")
	return nil
}

// Maintain runs value log garbage collection until nothing is left to
// rewrite or ctx is done.
func (s *BadgerStore) Maintain(ctx context.Context) error {
	rewrites := 0
	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(s.gcRatio)
		switch {
		case err == nil:
			rewrites++
			continue
		case errors.Is(err, badger.ErrNoRewrite),
			errors.Is(err, badger.ErrGCInMemoryMode),
			errors.Is(err, badger.ErrRejected):
			if rewrites > 0 {
				s.logger.Debug().Int("rewrites", rewrites).Msg("value log GC complete")
			}
			return nil
		default:
			return fmt.Errorf("value log gc: %w", err)
		}
	}
	return ctx.Err()
}
