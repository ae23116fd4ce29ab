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

package mock

import (
	"context"
	"sync"

	"github.com/magiconair/properties"
	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/linear"
)

// Fault is a scripted failure injected into the next store call.
type Fault int

// Faults.
const (
	FaultNone Fault = iota
	FaultUnavailable
	FaultReadTimeout
	FaultWriteTimeout
	FaultNoHost
	FaultUnhandled
)

// Registers is an in-memory register bank shared by every mock session, the
// way a real cluster is shared by every connection. A fault script makes
// calls fail deterministically.
type Registers struct {
	mu     sync.Mutex
	cells  map[int64]int64
	faults []Fault
}

// NewRegisters creates an empty register bank.
func NewRegisters() *Registers {
	return &Registers{cells: make(map[int64]int64)}
}

// Script queues faults. Each store call consumes one queued fault before
// touching the registers; an empty queue means calls succeed.
func (s *Registers) Script(faults ...Fault) {
	s.mu.Lock()
	s.faults = append(s.faults, faults...)
	s.mu.Unlock()
}

// Get returns the current content of a register.
func (s *Registers) Get(register int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cells[register]
	return v, ok
}

func (s *Registers) takeFault() Fault {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.faults) == 0 {
		return FaultNone
	}
	f := s.faults[0]
	s.faults = s.faults[1:]
	return f
}

func faultErr(f Fault) error {
	switch f {
	case FaultUnavailable:
		return linear.ErrUnavailable
	case FaultReadTimeout:
		return linear.ErrReadTimeout
	case FaultWriteTimeout:
		return linear.ErrWriteTimeout
	case FaultNoHost:
		return linear.ErrNoHostAvailable
	case FaultUnhandled:
		return errors.New("injected fault")
	}
	return nil
}

type mockStore struct {
	regs *Registers
}

// NewStore returns a session against the given register bank.
func NewStore(regs *Registers) linear.Store {
	return &mockStore{regs: regs}
}

func (s *mockStore) Close() error {
	return nil
}

func (s *mockStore) InitThread(ctx context.Context, _ int, _ int) context.Context {
	return ctx
}

func (s *mockStore) CleanupThread(_ context.Context) {
}

func (s *mockStore) ConditionalWrite(_ context.Context, register int64, value int64) (bool, error) {
	if f := s.regs.takeFault(); f != FaultNone {
		return false, faultErr(f)
	}

	s.regs.mu.Lock()
	if _, ok := s.regs.cells[register]; ok {
		s.regs.cells[register] = value
		s.regs.mu.Unlock()
		return true, nil
	}
	s.regs.mu.Unlock()

	// Separate critical section so two first writers can race, mirroring
	// the update-then-insert pair on the real store.
	s.regs.mu.Lock()
	defer s.regs.mu.Unlock()
	if _, ok := s.regs.cells[register]; ok {
		return false, nil
	}
	s.regs.cells[register] = value
	return true, nil
}

func (s *mockStore) CompareAndSwap(_ context.Context, register int64, expected int64, next int64) (bool, error) {
	if f := s.regs.takeFault(); f != FaultNone {
		return false, faultErr(f)
	}

	s.regs.mu.Lock()
	defer s.regs.mu.Unlock()
	cur, ok := s.regs.cells[register]
	if !ok || cur != expected {
		return false, nil
	}
	s.regs.cells[register] = next
	return true, nil
}

func (s *mockStore) LinearizableRead(_ context.Context, register int64) (int64, bool, error) {
	if f := s.regs.takeFault(); f != FaultNone {
		return 0, false, faultErr(f)
	}

	s.regs.mu.Lock()
	defer s.regs.mu.Unlock()
	v, ok := s.regs.cells[register]
	return v, ok, nil
}

var shared = NewRegisters()

type mockCreator struct {
}

func (mockCreator) Create(_ *properties.Properties) (linear.Store, error) {
	return NewStore(shared), nil
}

func init() {
	linear.RegisterStoreCreator("mock", mockCreator{})
}
