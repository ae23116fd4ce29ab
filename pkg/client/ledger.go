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

import "sync/atomic"

// processLedger hands out logical process ids for the whole run. Ids are
// strictly increasing and never reused: a worker takes one at start and
// takes a fresh one after every ambiguous operation, so the operations
// sharing an id form a totally ordered chain that breaks exactly at the
// point of ambiguity.
type processLedger struct {
	last int64
}

func newProcessLedger() *processLedger {
	return &processLedger{last: -1}
}

// next allocates the next process id. The first allocation returns 0.
func (l *processLedger) next() int64 {
	return atomic.AddInt64(&l.last, 1)
}
