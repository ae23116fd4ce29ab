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

package prop

import (
	"github.com/magiconair/properties"
	"github.com/pingcap/errors"
)

// Validate checks the workload properties before the engine starts, so a
// bad configuration never reaches a worker.
func Validate(p *properties.Properties) error {
	registers := p.GetInt64(Registers, RegistersDefault)
	if registers <= 0 {
		return errors.Errorf("%s must be positive, got %d", Registers, registers)
	}

	threads := p.GetInt64(ThreadCount, ThreadCountDefault)
	if threads <= 0 {
		return errors.Errorf("%s must be positive, got %d", ThreadCount, threads)
	}

	ops := p.GetInt64(OperationCount, OperationCountDefault)
	if ops <= 0 {
		return errors.Errorf("%s must be positive, got %d", OperationCount, ops)
	}
	if ops < threads {
		return errors.Errorf("%s: %d should be bigger than %s: %d",
			OperationCount, ops, ThreadCount, threads)
	}

	upper := p.GetInt64(UpperBound, UpperBoundDefault)
	if upper <= 0 {
		return errors.Errorf("%s must be positive, got %d", UpperBound, upper)
	}

	return nil
}
