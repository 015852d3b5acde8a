// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
)

// JSONRPCClient talks to a [JSONRPCServer]. Errors returned by the server
// wrap the matching sentinel of the list, registry or rpc packages.
//
// Numbers travel as JSON, so numeric values come back as float64.
type JSONRPCClient struct {
	requester rpc.EndpointRequester
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) send(ctx context.Context, method string, args any, reply any) error {
	return parseError(cli.requester.SendRequest(ctx, Name+"."+method, args, reply))
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.send(ctx,
		"ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) Create(ctx context.Context, name string, values []any) error {
	return cli.send(
		ctx,
		"create",
		&CreateArgs{Name: name, Values: values},
		new(SuccessReply),
	)
}

func (cli *JSONRPCClient) Drop(ctx context.Context, name string) error {
	return cli.send(
		ctx,
		"drop",
		&NameArgs{Name: name},
		new(SuccessReply),
	)
}

func (cli *JSONRPCClient) Names(ctx context.Context) ([]string, error) {
	resp := new(NamesReply)
	err := cli.send(
		ctx,
		"names",
		nil,
		resp,
	)
	return resp.Names, err
}

func (cli *JSONRPCClient) Len(ctx context.Context, name string) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"len",
		&NameArgs{Name: name},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) Get(ctx context.Context, name string, index int) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"get",
		&IndexArgs{Name: name, Index: index},
		resp,
	)
	return resp.Value, err
}

// Last returns the last value of [name].
func (cli *JSONRPCClient) Last(ctx context.Context, name string) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"get",
		&IndexArgs{Name: name},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) Set(ctx context.Context, name string, index int, value any) error {
	return cli.send(
		ctx,
		"set",
		&SetArgs{Name: name, Index: index, Value: value},
		new(SuccessReply),
	)
}

func (cli *JSONRPCClient) Append(ctx context.Context, name string, value any) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"append",
		&ValueArgs{Name: name, Value: value},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) Prepend(ctx context.Context, name string, value any) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"prepend",
		&ValueArgs{Name: name, Value: value},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) Extend(ctx context.Context, name string, values []any) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"extend",
		&CreateArgs{Name: name, Values: values},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) Insert(ctx context.Context, name string, index int, values []any) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"insert",
		&InsertArgs{Name: name, Index: index, Values: values},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) Delete(ctx context.Context, name string, index int) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"delete",
		&IndexArgs{Name: name, Index: index},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) Values(ctx context.Context, name string) ([]any, error) {
	resp := new(ValuesReply)
	err := cli.send(
		ctx,
		"values",
		&NameArgs{Name: name},
		resp,
	)
	return resp.Values, err
}

// OpenCursor opens a cursor before the first element of [name], or on the
// element at [index] when one is given.
func (cli *JSONRPCClient) OpenCursor(ctx context.Context, name string, index *int) (ids.ID, error) {
	args := &OpenCursorArgs{Name: name}
	if index != nil {
		args.Index = *index
	}
	resp := new(CursorReply)
	err := cli.send(
		ctx,
		"openCursor",
		args,
		resp,
	)
	return resp.CursorID, err
}

func (cli *JSONRPCClient) CloseCursor(ctx context.Context, id ids.ID) error {
	return cli.send(
		ctx,
		"closeCursor",
		&CursorArgs{CursorID: id},
		new(SuccessReply),
	)
}

func (cli *JSONRPCClient) HasNext(ctx context.Context, id ids.ID) (bool, error) {
	resp := new(BoolReply)
	err := cli.send(
		ctx,
		"hasNext",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Result, err
}

func (cli *JSONRPCClient) HasPrev(ctx context.Context, id ids.ID) (bool, error) {
	resp := new(BoolReply)
	err := cli.send(
		ctx,
		"hasPrev",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Result, err
}

func (cli *JSONRPCClient) Next(ctx context.Context, id ids.ID) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"next",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) Prev(ctx context.Context, id ids.ID) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"prev",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) Value(ctx context.Context, id ids.ID) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"value",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Value, err
}

func (cli *JSONRPCClient) InsertAfter(ctx context.Context, id ids.ID, value any) (int, error) {
	resp := new(LenReply)
	err := cli.send(
		ctx,
		"insertAfter",
		&InsertAfterArgs{CursorID: id, Value: value},
		resp,
	)
	return resp.Len, err
}

func (cli *JSONRPCClient) DeleteCurrent(ctx context.Context, id ids.ID) (any, error) {
	resp := new(ValueReply)
	err := cli.send(
		ctx,
		"deleteCurrent",
		&CursorArgs{CursorID: id},
		resp,
	)
	return resp.Value, err
}
