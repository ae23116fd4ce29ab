// Copyright 2018 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package linear

import (
	"context"
	"fmt"

	"github.com/magiconair/properties"
	"github.com/pingcap/errors"
)

// Classified store failures. A driver maps its wire-level errors onto these
// sentinels so the workload engine can tell a definite miss from an ambiguous
// one. Any other error is treated as unhandled.
var (
	ErrUnavailable     = errors.New("store unavailable")
	ErrReadTimeout     = errors.New("store read timed out")
	ErrWriteTimeout    = errors.New("store write timed out")
	ErrNoHostAvailable = errors.New("no store host available")
)

// StoreCreator creates a store layer.
type StoreCreator interface {
	Create(p *properties.Properties) (Store, error)
}

// Store is one session against a register store: a set of linearizable
// integer cells addressed by integer id, supporting conditional updates.
// Each worker owns exactly one Store for the whole run.
type Store interface {
	// Close closes the session.
	Close() error

	// InitThread initializes the state associated to the goroutine worker.
	// The returned context is passed to the following operations.
	InitThread(ctx context.Context, threadID int, threadCount int) context.Context

	// CleanupThread cleans up the state when the worker finished.
	CleanupThread(ctx context.Context)

	// ConditionalWrite sets the register to value if the register exists.
	// When the register does not exist yet it falls back to a single
	// conditional insert and reports that insert's applied flag; a lost
	// race on the insert is not retried.
	ConditionalWrite(ctx context.Context, register int64, value int64) (applied bool, err error)

	// CompareAndSwap sets the register to next only if its current content
	// equals expected.
	CompareAndSwap(ctx context.Context, register int64, expected int64, next int64) (applied bool, err error)

	// LinearizableRead reads the register at the store's strongest
	// consistency level. found is false when the register was never
	// written.
	LinearizableRead(ctx context.Context, register int64) (value int64, found bool, err error)
}

var storeCreators = map[string]StoreCreator{}

// RegisterStoreCreator registers a creator for the store backend.
func RegisterStoreCreator(name string, creator StoreCreator) {
	_, ok := storeCreators[name]
	if ok {
		panic(fmt.Sprintf("duplicate register store %s", name))
	}

	storeCreators[name] = creator
}

// GetStoreCreator gets the StoreCreator for the store backend.
func GetStoreCreator(name string) StoreCreator {
	return storeCreators[name]
}
