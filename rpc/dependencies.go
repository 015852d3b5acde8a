// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
)

//go:generate go run go.uber.org/mock/mockgen -package=rpc -destination=mock_registry.go . Registry

// Registry is the store the JSON-RPC service exposes. It is implemented by
// [registry.Registry].
type Registry interface {
	Create(ctx context.Context, name string, values []any) error
	Drop(ctx context.Context, name string) error
	Names(ctx context.Context) []string

	Len(ctx context.Context, name string) (int, error)
	Get(ctx context.Context, name string, index int) (any, error)
	Last(ctx context.Context, name string) (any, error)
	Set(ctx context.Context, name string, index int, value any) error
	Append(ctx context.Context, name string, value any) (int, error)
	Prepend(ctx context.Context, name string, value any) (int, error)
	Extend(ctx context.Context, name string, values []any) (int, error)
	Insert(ctx context.Context, name string, index int, values []any) (int, error)
	Delete(ctx context.Context, name string, index int) (any, error)
	Values(ctx context.Context, name string) ([]any, error)

	OpenCursor(ctx context.Context, name string, index *int) (ids.ID, error)
	CloseCursor(ctx context.Context, id ids.ID) error
	HasNext(ctx context.Context, id ids.ID) (bool, error)
	HasPrev(ctx context.Context, id ids.ID) (bool, error)
	Next(ctx context.Context, id ids.ID) (any, error)
	Prev(ctx context.Context, id ids.ID) (any, error)
	Value(ctx context.Context, id ids.ID) (any, error)
	InsertAfter(ctx context.Context, id ids.ID, value any) (int, error)
	DeleteCurrent(ctx context.Context, id ids.ID) (any, error)
}
