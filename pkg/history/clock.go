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

import "time"

// Clock produces corrected nanosecond timestamps: a fixed base offset plus
// the monotonic time elapsed since the clock was created. All workers share
// one Clock, so their timestamps are comparable without any shared atomic
// on the hot path.
type Clock struct {
	base  int64
	start time.Time
}

// NewClock creates a Clock whose first reading is at least offsetNs.
func NewClock(offsetNs int64) *Clock {
	return &Clock{
		base:  offsetNs,
		start: time.Now(),
	}
}

// Now returns the corrected timestamp in nanoseconds.
func (c *Clock) Now() int64 {
	return c.base + time.Since(c.start).Nanoseconds()
}
