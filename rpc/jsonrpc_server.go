// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	ilogging "github.com/ava-labs/seqlist/internal/logging"
	"github.com/ava-labs/seqlist/list"
)

type JSONRPCServer struct {
	registry Registry
	log      logging.Logger
}

func NewJSONRPCServer(registry Registry, log logging.Logger) *JSONRPCServer {
	return &JSONRPCServer{
		registry: registry,
		log:      ilogging.OrNoop(log),
	}
}

// parseIndex converts an index received as a JSON value.
func parseIndex(v any) (int, error) {
	if v == nil {
		return 0, ErrMissingIndex
	}
	return list.ParseIndex(v)
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

type NameArgs struct {
	Name string `json:"name"`
}

type CreateArgs struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

type SuccessReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Create(req *http.Request, args *CreateArgs, reply *SuccessReply) error {
	if err := j.registry.Create(req.Context(), args.Name, args.Values); err != nil {
		return err
	}
	j.log.Debug("created sequence",
		zap.String("name", args.Name),
	)
	reply.Success = true
	return nil
}

func (j *JSONRPCServer) Drop(req *http.Request, args *NameArgs, reply *SuccessReply) error {
	if err := j.registry.Drop(req.Context(), args.Name); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type NamesReply struct {
	Names []string `json:"names"`
}

func (j *JSONRPCServer) Names(req *http.Request, _ *struct{}, reply *NamesReply) error {
	reply.Names = j.registry.Names(req.Context())
	return nil
}

type LenReply struct {
	Len int `json:"len"`
}

func (j *JSONRPCServer) Len(req *http.Request, args *NameArgs, reply *LenReply) error {
	n, err := j.registry.Len(req.Context(), args.Name)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

type IndexArgs struct {
	Name string `json:"name"`
	// Index is any integral JSON value. Get treats a missing index as the
	// last element.
	Index any `json:"index"`
}

type ValueReply struct {
	Value any `json:"value"`
}

func (j *JSONRPCServer) Get(req *http.Request, args *IndexArgs, reply *ValueReply) error {
	var (
		v   any
		err error
	)
	if args.Index == nil {
		v, err = j.registry.Last(req.Context(), args.Name)
	} else {
		var i int
		i, err = parseIndex(args.Index)
		if err != nil {
			return err
		}
		v, err = j.registry.Get(req.Context(), args.Name, i)
	}
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}

type SetArgs struct {
	Name  string `json:"name"`
	Index any    `json:"index"`
	Value any    `json:"value"`
}

func (j *JSONRPCServer) Set(req *http.Request, args *SetArgs, reply *SuccessReply) error {
	i, err := parseIndex(args.Index)
	if err != nil {
		return err
	}
	if err := j.registry.Set(req.Context(), args.Name, i, args.Value); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type ValueArgs struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

func (j *JSONRPCServer) Append(req *http.Request, args *ValueArgs, reply *LenReply) error {
	n, err := j.registry.Append(req.Context(), args.Name, args.Value)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

func (j *JSONRPCServer) Prepend(req *http.Request, args *ValueArgs, reply *LenReply) error {
	n, err := j.registry.Prepend(req.Context(), args.Name, args.Value)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

func (j *JSONRPCServer) Extend(req *http.Request, args *CreateArgs, reply *LenReply) error {
	n, err := j.registry.Extend(req.Context(), args.Name, args.Values)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

type InsertArgs struct {
	Name   string `json:"name"`
	Index  any    `json:"index"`
	Values []any  `json:"values"`
}

func (j *JSONRPCServer) Insert(req *http.Request, args *InsertArgs, reply *LenReply) error {
	i, err := parseIndex(args.Index)
	if err != nil {
		return err
	}
	n, err := j.registry.Insert(req.Context(), args.Name, i, args.Values)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

func (j *JSONRPCServer) Delete(req *http.Request, args *IndexArgs, reply *ValueReply) error {
	i, err := parseIndex(args.Index)
	if err != nil {
		return err
	}
	v, err := j.registry.Delete(req.Context(), args.Name, i)
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}

type ValuesReply struct {
	Values []any `json:"values"`
}

func (j *JSONRPCServer) Values(req *http.Request, args *NameArgs, reply *ValuesReply) error {
	values, err := j.registry.Values(req.Context(), args.Name)
	if err != nil {
		return err
	}
	reply.Values = values
	return nil
}

type OpenCursorArgs struct {
	Name string `json:"name"`
	// Index positions the cursor on an element. Without it the cursor starts
	// before the first element.
	Index any `json:"index,omitempty"`
}

type CursorReply struct {
	CursorID ids.ID `json:"cursorId"`
}

func (j *JSONRPCServer) OpenCursor(req *http.Request, args *OpenCursorArgs, reply *CursorReply) error {
	var index *int
	if args.Index != nil {
		i, err := list.ParseIndex(args.Index)
		if err != nil {
			return err
		}
		index = &i
	}
	id, err := j.registry.OpenCursor(req.Context(), args.Name, index)
	if err != nil {
		return err
	}
	reply.CursorID = id
	return nil
}

type CursorArgs struct {
	CursorID ids.ID `json:"cursorId"`
}

func (j *JSONRPCServer) CloseCursor(req *http.Request, args *CursorArgs, reply *SuccessReply) error {
	if err := j.registry.CloseCursor(req.Context(), args.CursorID); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type BoolReply struct {
	Result bool `json:"result"`
}

func (j *JSONRPCServer) HasNext(req *http.Request, args *CursorArgs, reply *BoolReply) error {
	ok, err := j.registry.HasNext(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Result = ok
	return nil
}

func (j *JSONRPCServer) HasPrev(req *http.Request, args *CursorArgs, reply *BoolReply) error {
	ok, err := j.registry.HasPrev(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Result = ok
	return nil
}

func (j *JSONRPCServer) Next(req *http.Request, args *CursorArgs, reply *ValueReply) error {
	v, err := j.registry.Next(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}

func (j *JSONRPCServer) Prev(req *http.Request, args *CursorArgs, reply *ValueReply) error {
	v, err := j.registry.Prev(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}

func (j *JSONRPCServer) Value(req *http.Request, args *CursorArgs, reply *ValueReply) error {
	v, err := j.registry.Value(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}

type InsertAfterArgs struct {
	CursorID ids.ID `json:"cursorId"`
	Value    any    `json:"value"`
}

func (j *JSONRPCServer) InsertAfter(req *http.Request, args *InsertAfterArgs, reply *LenReply) error {
	n, err := j.registry.InsertAfter(req.Context(), args.CursorID, args.Value)
	if err != nil {
		return err
	}
	reply.Len = n
	return nil
}

func (j *JSONRPCServer) DeleteCurrent(req *http.Request, args *CursorArgs, reply *ValueReply) error {
	v, err := j.registry.DeleteCurrent(req.Context(), args.CursorID)
	if err != nil {
		return err
	}
	reply.Value = v
	return nil
}
