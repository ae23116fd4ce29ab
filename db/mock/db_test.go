package mock

import (
	"context"
	"testing"

	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/linear"
)

func TestConditionalWrite(t *testing.T) {
	regs := NewRegisters()
	s := NewStore(regs)
	ctx := context.Background()

	// first write goes through the insert fallback
	applied, err := s.ConditionalWrite(ctx, 1, 3)
	if err != nil || !applied {
		t.Fatalf("want applied, but got %v %v", applied, err)
	}
	if v, ok := regs.Get(1); !ok || v != 3 {
		t.Fatalf("want register 1 = 3, but got %d (%v)", v, ok)
	}

	applied, err = s.ConditionalWrite(ctx, 1, 4)
	if err != nil || !applied {
		t.Fatalf("want applied, but got %v %v", applied, err)
	}
	if v, _ := regs.Get(1); v != 4 {
		t.Fatalf("want register 1 = 4, but got %d", v)
	}
}

func TestCompareAndSwap(t *testing.T) {
	regs := NewRegisters()
	s := NewStore(regs)
	ctx := context.Background()

	applied, err := s.CompareAndSwap(ctx, 1, 0, 2)
	if err != nil || applied {
		t.Fatalf("cas on an absent register: want not applied, but got %v %v", applied, err)
	}

	if _, err := s.ConditionalWrite(ctx, 1, 0); err != nil {
		t.Fatal(err)
	}

	applied, err = s.CompareAndSwap(ctx, 1, 1, 2)
	if err != nil || applied {
		t.Fatalf("cas with wrong expected: want not applied, but got %v %v", applied, err)
	}

	applied, err = s.CompareAndSwap(ctx, 1, 0, 2)
	if err != nil || !applied {
		t.Fatalf("want applied, but got %v %v", applied, err)
	}
	if v, _ := regs.Get(1); v != 2 {
		t.Fatalf("want register 1 = 2, but got %d", v)
	}
}

func TestLinearizableRead(t *testing.T) {
	regs := NewRegisters()
	s := NewStore(regs)
	ctx := context.Background()

	_, found, err := s.LinearizableRead(ctx, 9)
	if err != nil || found {
		t.Fatalf("read of absent register: want not found, but got %v %v", found, err)
	}

	if _, err := s.ConditionalWrite(ctx, 9, 5); err != nil {
		t.Fatal(err)
	}

	v, found, err := s.LinearizableRead(ctx, 9)
	if err != nil || !found || v != 5 {
		t.Fatalf("want 5, but got %d (%v, %v)", v, found, err)
	}
}

func TestFaultScript(t *testing.T) {
	regs := NewRegisters()
	regs.Script(FaultWriteTimeout, FaultNoHost)
	s := NewStore(regs)
	ctx := context.Background()

	_, err := s.ConditionalWrite(ctx, 1, 1)
	if errors.Cause(err) != linear.ErrWriteTimeout {
		t.Fatalf("want ErrWriteTimeout, but got %v", err)
	}

	_, _, err = s.LinearizableRead(ctx, 1)
	if errors.Cause(err) != linear.ErrNoHostAvailable {
		t.Fatalf("want ErrNoHostAvailable, but got %v", err)
	}

	// script exhausted, calls succeed again
	if applied, err := s.ConditionalWrite(ctx, 1, 1); err != nil || !applied {
		t.Fatalf("want applied, but got %v %v", applied, err)
	}
}
