// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	oteltrace "go.opentelemetry.io/otel/trace"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
	"github.com/ava-labs/seqlist/list"
)

const maxNameLen = 128

type Config struct {
	// Maximum number of named sequences. 0 means unlimited.
	MaxSequences int `json:"maxSequences" yaml:"maxSequences"`
	// Maximum number of open cursors across all sequences. 0 means
	// unlimited.
	MaxCursors int `json:"maxCursors" yaml:"maxCursors"`
	// How long a cursor stays open without being used. 0 disables expiry.
	CursorTTL time.Duration `json:"cursorTTL" yaml:"cursorTTL"`
}

func DefaultConfig() Config {
	return Config{
		MaxSequences: 1_024,
		MaxCursors:   4_096,
		CursorTTL:    5 * time.Minute,
	}
}

func (c Config) Verify() error {
	switch {
	case c.MaxSequences < 0:
		return fmt.Errorf("%w: negative max sequences", ErrInvalidConfig)
	case c.MaxCursors < 0:
		return fmt.Errorf("%w: negative max cursors", ErrInvalidConfig)
	case c.CursorTTL < 0:
		return fmt.Errorf("%w: negative cursor ttl", ErrInvalidConfig)
	}
	return nil
}

// Registry stores named sequences and the cursors opened over them.
//
// Sequences are not safe for concurrent use on their own; the registry holds
// one lock per sequence and takes it for every operation on that sequence or
// on one of its cursors.
type Registry struct {
	config  Config
	tracer  trace.Tracer
	log     logging.Logger
	clock   *mockable.Clock
	metrics *metrics

	// [mu] guards the maps, the lease queue, cursor expiries and each
	// entry's cursor set. It is never acquired while holding an entry lock.
	mu        sync.RWMutex
	sequences map[string]*entry
	cursors   map[ids.ID]*cursorEntry
	leases    *list.Sequence[lease]
}

type entry struct {
	name string

	mu  sync.Mutex
	seq *list.Sequence[any]

	cursors set.Set[ids.ID]
}

// New returns an empty registry. [clock] and [log] may be nil.
func New(
	config Config,
	tracer trace.Tracer,
	log logging.Logger,
	clock *mockable.Clock,
	reg prometheus.Registerer,
) (*Registry, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = &mockable.Clock{}
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Registry{
		config:    config,
		tracer:    tracer,
		log:       ilogging.OrNoop(log),
		clock:     clock,
		metrics:   m,
		sequences: make(map[string]*entry),
		cursors:   make(map[ids.ID]*cursorEntry),
		leases:    list.New[lease](),
	}, nil
}

func verifyName(name string) error {
	if len(name) == 0 || len(name) > maxNameLen {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Create adds a sequence called [name] holding a copy of [values].
func (r *Registry) Create(ctx context.Context, name string, values []any) error {
	_, span := r.tracer.Start(ctx, "Registry.Create", oteltrace.WithAttributes(
		attribute.String("name", name),
		attribute.Int("values", len(values)),
	))
	defer span.End()

	start := time.Now()
	err := r.create(name, values)
	r.metrics.record("Create", start, err)
	return err
}

func (r *Registry) create(name string, values []any) error {
	if err := verifyName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sequences[name]; ok {
		return fmt.Errorf("%w: %s", ErrSequenceExists, name)
	}
	if r.config.MaxSequences > 0 && len(r.sequences) >= r.config.MaxSequences {
		return fmt.Errorf("%w: limit %d", ErrTooManySequences, r.config.MaxSequences)
	}
	r.sequences[name] = &entry{
		name:    name,
		seq:     list.FromSlice(values),
		cursors: set.Set[ids.ID]{},
	}
	r.metrics.sequences.Set(float64(len(r.sequences)))
	r.log.Debug("created sequence",
		zap.String("name", name),
		zap.Int("len", len(values)),
	)
	return nil
}

// Drop removes the sequence called [name] and closes its cursors.
func (r *Registry) Drop(ctx context.Context, name string) error {
	_, span := r.tracer.Start(ctx, "Registry.Drop", oteltrace.WithAttributes(
		attribute.String("name", name),
	))
	defer span.End()

	start := time.Now()
	err := r.drop(name)
	r.metrics.record("Drop", start, err)
	return err
}

func (r *Registry) drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sequences[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSequenceNotFound, name)
	}
	closed := e.cursors.Len()
	for id := range e.cursors {
		delete(r.cursors, id)
	}
	delete(r.sequences, name)
	r.metrics.sequences.Set(float64(len(r.sequences)))
	r.metrics.cursors.Set(float64(len(r.cursors)))
	r.log.Debug("dropped sequence",
		zap.String("name", name),
		zap.Int("closedCursors", closed),
	)
	return nil
}

// Names returns the names of every sequence, sorted.
func (r *Registry) Names(ctx context.Context) []string {
	_, span := r.tracer.Start(ctx, "Registry.Names")
	defer span.End()

	r.mu.RLock()
	names := maps.Keys(r.sequences)
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

func (r *Registry) lookup(name string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sequences[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSequenceNotFound, name)
	}
	return e, nil
}

// withSequence runs [f] while holding the lock of the sequence called
// [name].
func (r *Registry) withSequence(
	ctx context.Context,
	op string,
	name string,
	f func(*list.Sequence[any]) error,
) error {
	_, span := r.tracer.Start(ctx, "Registry."+op, oteltrace.WithAttributes(
		attribute.String("name", name),
	))
	defer span.End()

	start := time.Now()
	e, err := r.lookup(name)
	if err == nil {
		e.mu.Lock()
		err = f(e.seq)
		e.mu.Unlock()
	}
	r.metrics.record(op, start, err)
	return err
}

func (r *Registry) Len(ctx context.Context, name string) (int, error) {
	var n int
	err := r.withSequence(ctx, "Len", name, func(s *list.Sequence[any]) error {
		n = s.Len()
		return nil
	})
	return n, err
}

func (r *Registry) Get(ctx context.Context, name string, index int) (any, error) {
	var v any
	err := r.withSequence(ctx, "Get", name, func(s *list.Sequence[any]) error {
		var err error
		v, err = s.Get(index)
		return err
	})
	return v, err
}

// Last returns the last value of the sequence called [name].
func (r *Registry) Last(ctx context.Context, name string) (any, error) {
	var v any
	err := r.withSequence(ctx, "Last", name, func(s *list.Sequence[any]) error {
		var err error
		v, err = s.Last()
		return err
	})
	return v, err
}

func (r *Registry) Set(ctx context.Context, name string, index int, value any) error {
	return r.withSequence(ctx, "Set", name, func(s *list.Sequence[any]) error {
		return s.Set(index, value)
	})
}

// Append adds [value] as one element and returns the new length.
func (r *Registry) Append(ctx context.Context, name string, value any) (int, error) {
	var n int
	err := r.withSequence(ctx, "Append", name, func(s *list.Sequence[any]) error {
		s.Append(value)
		n = s.Len()
		return nil
	})
	return n, err
}

// Prepend adds [value] as one element and returns the new length.
func (r *Registry) Prepend(ctx context.Context, name string, value any) (int, error) {
	var n int
	err := r.withSequence(ctx, "Prepend", name, func(s *list.Sequence[any]) error {
		s.Prepend(value)
		n = s.Len()
		return nil
	})
	return n, err
}

// Extend adds every value in [values] and returns the new length.
func (r *Registry) Extend(ctx context.Context, name string, values []any) (int, error) {
	var n int
	err := r.withSequence(ctx, "Extend", name, func(s *list.Sequence[any]) error {
		s.Extend(values...)
		n = s.Len()
		return nil
	})
	return n, err
}

// Insert adds [values] starting at [index] and returns the new length.
func (r *Registry) Insert(ctx context.Context, name string, index int, values []any) (int, error) {
	var n int
	err := r.withSequence(ctx, "Insert", name, func(s *list.Sequence[any]) error {
		if err := s.Insert(index, values...); err != nil {
			return err
		}
		n = s.Len()
		return nil
	})
	return n, err
}

func (r *Registry) Delete(ctx context.Context, name string, index int) (any, error) {
	var v any
	err := r.withSequence(ctx, "Delete", name, func(s *list.Sequence[any]) error {
		var err error
		v, err = s.Delete(index)
		return err
	})
	return v, err
}

// Values returns a copy of the values of the sequence called [name].
func (r *Registry) Values(ctx context.Context, name string) ([]any, error) {
	var values []any
	err := r.withSequence(ctx, "Values", name, func(s *list.Sequence[any]) error {
		values = s.Values()
		return nil
	})
	return values, err
}
