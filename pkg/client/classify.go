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
	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/history"
	"github.com/pingcap/go-linear/pkg/linear"
)

// verdict is the classified outcome of one store call.
type verdict struct {
	typ   history.Type
	cause history.Cause
	err   string
}

// classify maps a store outcome to the terminal record type.
//
// A timeout on the write path leaves the store's actual state unknown (the
// update may have committed), so it is info, never fail: fail asserts the
// operation definitely did not take effect. A timeout on the read path
// cannot have mutated the register, so it is a plain fail.
func classify(op history.Op, applied bool, err error) verdict {
	if err == nil {
		if op == history.OpRead || applied {
			return verdict{typ: history.TypeOK}
		}
		return verdict{typ: history.TypeFail}
	}

	mutation := op != history.OpRead

	switch errors.Cause(err) {
	case linear.ErrUnavailable:
		return verdict{typ: history.TypeFail, cause: history.CauseUnavailable}
	case linear.ErrReadTimeout:
		if mutation {
			return verdict{typ: history.TypeInfo, cause: history.CauseReadTimeout}
		}
		return verdict{typ: history.TypeFail, cause: history.CauseReadTimeout}
	case linear.ErrWriteTimeout:
		if mutation {
			return verdict{typ: history.TypeInfo, cause: history.CauseWriteTimeout}
		}
		return verdict{typ: history.TypeFail, cause: history.CauseWriteTimeout}
	case linear.ErrNoHostAvailable:
		return verdict{typ: history.TypeFail, cause: history.CauseNoHost}
	}

	return verdict{typ: history.TypeError, err: err.Error()}
}
