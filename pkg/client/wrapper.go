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

package client

import (
	"context"
	"strings"
	"time"

	"github.com/pingcap/go-linear/pkg/history"
	"github.com/pingcap/go-linear/pkg/linear"
	"github.com/pingcap/go-linear/pkg/measurement"
)

// noHostBackoff is the fixed pause taken when the whole store is
// unreachable: a bounded backoff instead of an infinite retry. The
// operation is not resubmitted.
var noHostBackoff = time.Second

// storeWrapper runs one register operation against a Store, measures its
// latency, and classifies the outcome.
type storeWrapper struct {
	store linear.Store
}

func measure(op history.Op, v verdict, start time.Time, lan time.Duration) {
	name := strings.ToUpper(op.String())
	if v.typ == history.TypeError {
		name += "_ERROR"
	}
	measurement.Measure(name, start, lan)
}

// do executes op against the store. It returns the value to attach to the
// terminal record (the invoked value, or the content read) and the verdict.
func (w storeWrapper) do(ctx context.Context, op history.Op, register int64, value history.Value) (history.Value, verdict) {
	start := time.Now()

	var applied bool
	var err error
	out := value

	switch op {
	case history.OpWrite:
		v, _ := value.Int()
		applied, err = w.store.ConditionalWrite(ctx, register, v)
	case history.OpCAS:
		expected, next, _ := value.Pair()
		applied, err = w.store.CompareAndSwap(ctx, register, expected, next)
	case history.OpRead:
		var v int64
		var found bool
		v, found, err = w.store.LinearizableRead(ctx, register)
		if err == nil {
			if found {
				out = history.IntValue(v)
			} else {
				out = history.NilValue()
			}
		}
	}

	vd := classify(op, applied, err)
	measure(op, vd, start, time.Since(start))

	if vd.cause == history.CauseNoHost {
		select {
		case <-time.After(noHostBackoff):
		case <-ctx.Done():
		}
	}

	return out, vd
}
