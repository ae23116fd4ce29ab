package history

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestEmitterConcurrent(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var buf bytes.Buffer
	e := NewEmitter(&buf)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(process int64) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				e.Emit(Record{
					Type:     TypeInvoke,
					Op:       OpWrite,
					Time:     int64(j),
					Process:  process,
					Register: 1,
					Value:    IntValue(int64(j)),
				})
			}
		}(int64(i))
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != workers*perWorker {
		t.Fatalf("want %d lines, but got %d", workers*perWorker, len(lines))
	}

	counts := make(map[string]int)
	for _, line := range lines {
		if !strings.HasPrefix(line, "{:type :invoke, :f :write, ") || !strings.HasSuffix(line, "}") {
			t.Fatalf("malformed line: %q", line)
		}
		i := strings.Index(line, ":process ")
		if i < 0 {
			t.Fatalf("no process field in %q", line)
		}
		rest := line[i+len(":process "):]
		counts[rest[:strings.IndexAny(rest, ",}")]]++
	}

	for p, n := range counts {
		if n != perWorker {
			t.Errorf("process %s: want %d lines, but got %d", p, perWorker, n)
		}
	}
}
