package history

import "testing"

func TestRecordString(t *testing.T) {
	cases := []struct {
		r    Record
		want string
	}{
		{
			Record{Type: TypeInvoke, Op: OpWrite, Time: 100, Process: 0, Register: 1, Value: IntValue(3)},
			`{:type :invoke, :f :write, :value 3, :time 100, :process 0, :register 1}`,
		},
		{
			Record{Type: TypeInvoke, Op: OpCAS, Time: 200, Process: 2, Register: 5, Value: PairValue(0, 4)},
			`{:type :invoke, :f :cas, :value [0 4], :time 200, :process 2, :register 5}`,
		},
		{
			Record{Type: TypeInvoke, Op: OpRead, Time: 300, Process: 1, Register: 2},
			`{:type :invoke, :f :read, :time 300, :process 1, :register 2}`,
		},
		{
			Record{Type: TypeOK, Op: OpRead, Time: 400, Process: 1, Register: 2, Value: IntValue(0)},
			`{:type :ok, :f :read, :value 0, :time 400, :process 1, :register 2}`,
		},
		{
			Record{Type: TypeOK, Op: OpRead, Time: 450, Process: 1, Register: 2, Value: NilValue()},
			`{:type :ok, :f :read, :value nil, :time 450, :process 1, :register 2}`,
		},
		{
			Record{Type: TypeInfo, Op: OpCAS, Time: 500, Process: 3, Register: 7, Value: PairValue(1, 2), Cause: CauseWriteTimeout},
			`{:type :info, :f :cas, :value [1 2], :time 500, :process 3, :register 7, :cause :write-timed-out}`,
		},
		{
			Record{Type: TypeFail, Op: OpRead, Time: 600, Process: 4, Register: 1, Cause: CauseNoHost},
			`{:type :fail, :f :read, :time 600, :process 4, :register 1, :cause :nohost}`,
		},
		{
			Record{Type: TypeError, Op: OpWrite, Time: 700, Process: 5, Register: 9, Value: IntValue(8), Error: `boom "quoted"`},
			`{:type :error, :f :write, :value 8, :time 700, :process 5, :register 9, :error "boom \"quoted\""}`,
		},
	}

	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("want %s, but got %s", c.want, got)
		}
	}
}

func TestValue(t *testing.T) {
	if !NoValue().IsAbsent() {
		t.Error("NoValue should be absent")
	}
	if NilValue().IsAbsent() {
		t.Error("NilValue should not be absent")
	}
	if _, ok := NilValue().Int(); ok {
		t.Error("NilValue should not report an int payload")
	}

	v, ok := IntValue(7).Int()
	if !ok || v != 7 {
		t.Errorf("want 7, but got %d (%v)", v, ok)
	}

	e, n, ok := PairValue(1, 2).Pair()
	if !ok || e != 1 || n != 2 {
		t.Errorf("want [1 2], but got [%d %d] (%v)", e, n, ok)
	}

	if _, ok := PairValue(1, 2).Int(); ok {
		t.Error("pair should not report an int payload")
	}
}
