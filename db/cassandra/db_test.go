package cassandra

import (
	"strings"
	"testing"

	"github.com/gocql/gocql"
	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/linear"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{&gocql.RequestErrUnavailable{}, linear.ErrUnavailable},
		{&gocql.RequestErrReadTimeout{}, linear.ErrReadTimeout},
		{&gocql.RequestErrWriteTimeout{}, linear.ErrWriteTimeout},
		{gocql.ErrNoConnections, linear.ErrNoHostAvailable},
	}

	for _, c := range cases {
		got := classifyError(c.err)
		if errors.Cause(got) != c.want {
			t.Errorf("want %v, but got %v", c.want, got)
		}
	}

	other := errors.New("some driver error")
	if got := classifyError(other); got != other {
		t.Errorf("unclassified error should pass through, but got %v", got)
	}
}

func TestSchema(t *testing.T) {
	stmts := Schema("linear", "registers", 3)
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements, but got %d", len(stmts))
	}
	if !strings.Contains(stmts[0], "CREATE KEYSPACE IF NOT EXISTS linear") {
		t.Errorf("bad keyspace statement: %s", stmts[0])
	}
	if !strings.Contains(stmts[1], "CREATE TABLE IF NOT EXISTS linear.registers") {
		t.Errorf("bad table statement: %s", stmts[1])
	}
}
