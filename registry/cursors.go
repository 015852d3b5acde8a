// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/seqlist/list"
)

type cursorEntry struct {
	id    ids.ID
	owner *entry

	// guarded by [owner.mu]
	cursor *list.Cursor[any]

	// guarded by [Registry.mu]
	expiry int64
}

// lease records that cursor [id] may be closed once [expiry] has passed,
// unless it was renewed since.
type lease struct {
	id     ids.ID
	expiry int64
}

// generateID creates a random cursor ID.
func generateID() (ids.ID, error) {
	var id ids.ID
	if _, err := rand.Read(id[:]); err != nil {
		return ids.Empty, err
	}
	return id, nil
}

// OpenCursor opens a cursor over the sequence called [name]. With a nil
// [index] the cursor starts before the first element; otherwise it starts on
// the element at [index].
func (r *Registry) OpenCursor(ctx context.Context, name string, index *int) (ids.ID, error) {
	_, span := r.tracer.Start(ctx, "Registry.OpenCursor", oteltrace.WithAttributes(
		attribute.String("name", name),
	))
	defer span.End()

	start := time.Now()
	id, err := r.openCursor(name, index)
	r.metrics.record("OpenCursor", start, err)
	return id, err
}

func (r *Registry) openCursor(name string, index *int) (ids.ID, error) {
	e, err := r.lookup(name)
	if err != nil {
		return ids.Empty, err
	}

	var c *list.Cursor[any]
	e.mu.Lock()
	if index == nil {
		c = e.seq.Cursor()
	} else {
		c, err = e.seq.CursorAt(*index)
	}
	e.mu.Unlock()
	if err != nil {
		return ids.Empty, err
	}

	id, err := generateID()
	if err != nil {
		return ids.Empty, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sequences[name] != e {
		return ids.Empty, fmt.Errorf("%w: %s", ErrSequenceNotFound, name)
	}
	if r.config.MaxCursors > 0 && len(r.cursors) >= r.config.MaxCursors {
		return ids.Empty, fmt.Errorf("%w: limit %d", ErrTooManyCursors, r.config.MaxCursors)
	}
	ce := &cursorEntry{
		id:     id,
		owner:  e,
		cursor: c,
	}
	r.cursors[id] = ce
	e.cursors.Add(id)
	r.renew(ce)
	r.metrics.cursors.Set(float64(len(r.cursors)))
	r.log.Debug("opened cursor",
		zap.Stringer("id", id),
		zap.String("name", name),
	)
	return id, nil
}

// CloseCursor forgets the cursor [id].
func (r *Registry) CloseCursor(ctx context.Context, id ids.ID) error {
	_, span := r.tracer.Start(ctx, "Registry.CloseCursor", oteltrace.WithAttributes(
		attribute.Stringer("id", id),
	))
	defer span.End()

	start := time.Now()
	r.mu.Lock()
	ce, ok := r.cursors[id]
	if ok {
		r.removeCursor(ce)
	}
	r.mu.Unlock()

	var err error
	if !ok {
		err = fmt.Errorf("%w: %s", ErrCursorNotFound, id)
	}
	r.metrics.record("CloseCursor", start, err)
	return err
}

// Assumes [r.mu] is held
func (r *Registry) removeCursor(ce *cursorEntry) {
	delete(r.cursors, ce.id)
	ce.owner.cursors.Remove(ce.id)
	r.metrics.cursors.Set(float64(len(r.cursors)))
}

// Assumes [r.mu] is held
func (r *Registry) renew(ce *cursorEntry) {
	if r.config.CursorTTL == 0 {
		return
	}
	ce.expiry = r.clock.Time().Add(r.config.CursorTTL).UnixNano()
	r.leases.Append(lease{id: ce.id, expiry: ce.expiry})
}

// Expire closes every cursor that has not been used for longer than the
// configured TTL and returns their IDs.
func (r *Registry) Expire(ctx context.Context) []ids.ID {
	_, span := r.tracer.Start(ctx, "Registry.Expire")
	defer span.End()

	now := r.clock.Time().UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()

	expired := []ids.ID{}
	for r.leases.Len() > 0 {
		l, _ := r.leases.First()
		if l.expiry > now {
			break
		}
		_, _ = r.leases.Delete(0)

		ce, ok := r.cursors[l.id]
		if !ok || ce.expiry != l.expiry {
			// closed or renewed since
			continue
		}
		r.removeCursor(ce)
		expired = append(expired, l.id)
	}
	if len(expired) > 0 {
		r.metrics.expired.Add(float64(len(expired)))
		r.log.Debug("expired cursors",
			zap.Int("count", len(expired)),
		)
	}
	return expired
}

// withCursor renews the lease of cursor [id] and runs [f] while holding the
// lock of the sequence it moves over.
func (r *Registry) withCursor(
	ctx context.Context,
	op string,
	id ids.ID,
	f func(*list.Cursor[any]) error,
) error {
	_, span := r.tracer.Start(ctx, "Registry."+op, oteltrace.WithAttributes(
		attribute.Stringer("id", id),
	))
	defer span.End()

	start := time.Now()
	r.mu.Lock()
	ce, ok := r.cursors[id]
	if ok {
		r.renew(ce)
	}
	r.mu.Unlock()

	var err error
	if !ok {
		err = fmt.Errorf("%w: %s", ErrCursorNotFound, id)
	} else {
		ce.owner.mu.Lock()
		err = f(ce.cursor)
		ce.owner.mu.Unlock()
	}
	r.metrics.record(op, start, err)
	return err
}

func (r *Registry) HasNext(ctx context.Context, id ids.ID) (bool, error) {
	var ok bool
	err := r.withCursor(ctx, "HasNext", id, func(c *list.Cursor[any]) error {
		ok = c.HasNext()
		return nil
	})
	return ok, err
}

func (r *Registry) HasPrev(ctx context.Context, id ids.ID) (bool, error) {
	var ok bool
	err := r.withCursor(ctx, "HasPrev", id, func(c *list.Cursor[any]) error {
		ok = c.HasPrev()
		return nil
	})
	return ok, err
}

func (r *Registry) Next(ctx context.Context, id ids.ID) (any, error) {
	var v any
	err := r.withCursor(ctx, "Next", id, func(c *list.Cursor[any]) error {
		var err error
		v, err = c.Next()
		return err
	})
	return v, err
}

func (r *Registry) Prev(ctx context.Context, id ids.ID) (any, error) {
	var v any
	err := r.withCursor(ctx, "Prev", id, func(c *list.Cursor[any]) error {
		var err error
		v, err = c.Prev()
		return err
	})
	return v, err
}

func (r *Registry) Value(ctx context.Context, id ids.ID) (any, error) {
	var v any
	err := r.withCursor(ctx, "Value", id, func(c *list.Cursor[any]) error {
		var err error
		v, err = c.Value()
		return err
	})
	return v, err
}

// InsertAfter adds [value] after the position of cursor [id] and moves the
// cursor onto it. It returns the new length of the sequence.
func (r *Registry) InsertAfter(ctx context.Context, id ids.ID, value any) (int, error) {
	var n int
	err := r.withCursor(ctx, "InsertAfter", id, func(c *list.Cursor[any]) error {
		c.InsertAfter(value)
		n = c.Sequence().Len()
		return nil
	})
	return n, err
}

// DeleteCurrent removes the element under cursor [id] and returns its value.
//
// Other cursors parked on the same element are not told about the removal.
func (r *Registry) DeleteCurrent(ctx context.Context, id ids.ID) (any, error) {
	var v any
	err := r.withCursor(ctx, "DeleteCurrent", id, func(c *list.Cursor[any]) error {
		var err error
		v, err = c.Delete()
		return err
	})
	return v, err
}
