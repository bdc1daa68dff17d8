// Package durable is the load/save adapter between in-memory console state
// and a storage.Repository.
//
// Load never fails: a missing key, a read error or a value that does not
// decode all yield the caller's default. Save never fails either: the value
// is encoded on the caller's goroutine and handed to a background writer,
// which logs and drops write errors. In-memory state stays authoritative for
// the session when a write is lost.
//
// Writes are coalesced per key, so a burst of saves to the same collection
// stores only the latest snapshot. Each key is written independently; there
// is no cross-key atomicity.
package durable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/placementdesk/internal/common"
	"github.com/dmitrijs2005/placementdesk/internal/console/storage"
	"github.com/dmitrijs2005/placementdesk/internal/logging"
)

const defaultSaveTimeout = 3 * time.Second

type Option func(*Store)

// WithSaveTimeout bounds each background write.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

type Store struct {
	repo        storage.Repository
	log         logging.Logger
	saveTimeout time.Duration

	mu      sync.Mutex
	pending map[string][]byte
	order   []string
	closed  bool

	kick    chan struct{}
	flushes chan chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

// Open starts the background writer. Call Close to flush and stop it.
func Open(repo storage.Repository, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		repo:        repo,
		log:         log.With("component", "durable"),
		saveTimeout: defaultSaveTimeout,
		pending:     make(map[string][]byte),
		kick:        make(chan struct{}, 1),
		flushes:     make(chan chan struct{}),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Load decodes the value stored under key into a T, or returns def when the
// key is missing, unreadable or corrupt.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "load failed, using default", "key", key, "error", err)
		return def
	}
	if raw == nil {
		return def
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(ctx, "stored value is corrupt, using default", "key", key,
			"error", fmt.Errorf("%w: %v", common.ErrorCorruptValue, err))
		return def
	}
	return v
}

// Save schedules value to be written under key. It returns immediately.
func (s *Store) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn(context.Background(), "encode failed, value not saved", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.log.Warn(context.Background(), "save after close dropped", "key", key, "error", common.ErrorStoreClosed)
		return
	}
	if _, queued := s.pending[key]; !queued {
		s.order = append(s.order, key)
	}
	s.pending[key] = data
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Seed writes defaults for every key not stored yet, synchronously.
func (s *Store) Seed(ctx context.Context, defaults map[string]any) error {
	values := make(map[string][]byte, len(defaults))
	for key, v := range defaults {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode default %s: %w", key, err)
		}
		values[key] = data
	}

	n, err := s.repo.SeedIfAbsent(ctx, values)
	if err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}
	if n > 0 {
		s.log.Info(ctx, "seeded collections", "count", n)
	}
	return nil
}

// Flush blocks until every save issued before the call has been attempted.
func (s *Store) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case s.flushes <- ack:
	case <-s.stopped:
		return common.ErrorStoreClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer. Saves after Close are
// dropped.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	<-s.stopped
	return nil
}

func (s *Store) run() {
	defer close(s.stopped)
	for {
		select {
		case <-s.kick:
			s.drain()
		case ack := <-s.flushes:
			s.drain()
			close(ack)
		case <-s.done:
			s.drain()
			return
		}
	}
}

func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.order) == 0 {
			s.mu.Unlock()
			return
		}
		key := s.order[0]
		s.order = s.order[1:]
		data := s.pending[key]
		delete(s.pending, key)
		s.mu.Unlock()

		s.write(key, data)
	}
}

func (s *Store) write(key string, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.repo.Set(ctx, key, data); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.log.Warn(ctx, "save timed out, in-memory state kept", "key", key, "timeout", s.saveTimeout)
			return
		}
		s.log.Warn(ctx, "save failed, in-memory state kept", "key", key, "error", err)
		return
	}
	s.log.Debug(ctx, "saved", "key", key, "bytes", len(data))
}

// Pending lists keys queued but not yet written, sorted.
func (s *Store) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.pending))
	for k := range s.pending {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
