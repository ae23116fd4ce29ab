package history

import "testing"

func TestClockOffset(t *testing.T) {
	c := NewClock(5_000_000)

	t1 := c.Now()
	if t1 < 5_000_000 {
		t.Errorf("want reading >= offset, but got %d", t1)
	}

	t2 := c.Now()
	if t2 < t1 {
		t.Errorf("clock went backwards: %d then %d", t1, t2)
	}
}

func TestClockNegativeOffset(t *testing.T) {
	c := NewClock(-1_000_000_000)
	if got := c.Now(); got >= 0 {
		t.Errorf("want negative corrected time right after start, but got %d", got)
	}
}
