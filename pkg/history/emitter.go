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

package history

import (
	"io"
	"sync"
)

// Emitter writes history records to a single stream. Concurrent workers
// share one Emitter; each record goes out as one write so lines never
// interleave.
type Emitter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewEmitter creates an Emitter writing to w.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit renders the record and writes it followed by a newline. Write
// failures are ignored: the stream is best effort and a worker must not
// stall on it.
func (e *Emitter) Emit(r Record) {
	e.mu.Lock()
	e.buf = r.appendTo(e.buf[:0])
	e.buf = append(e.buf, '\n')
	e.w.Write(e.buf)
	e.mu.Unlock()
}
