package measurement

import (
	"fmt"
	"io"
	"sort"
	"time"
)

// rawSample is one store call: when it started (us from unix epoch) and
// how long it took (us). Raw mode keeps every sample instead of a
// histogram so latencies can be lined up against the emitted history.
type rawSample struct {
	startUs   int64
	latencyUs int64
}

type raw struct {
	samples map[string][]rawSample
}

func InitRaw() *raw {
	return &raw{
		samples: make(map[string][]rawSample),
	}
}

func (r *raw) Measure(op string, start time.Time, lan time.Duration) {
	r.samples[op] = append(r.samples[op], rawSample{
		startUs:   start.UnixMicro(),
		latencyUs: lan.Microseconds(),
	})
}

func (r *raw) Output(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "operation,timestamp_us,latency_us"); err != nil {
		return err
	}

	// stable operation order so runs diff cleanly
	ops := make([]string, 0, len(r.samples))
	for op := range r.samples {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	for _, op := range ops {
		for _, s := range r.samples[op] {
			if _, err := fmt.Fprintf(w, "%s,%d,%d\n", op, s.startUs, s.latencyUs); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *raw) Summary() {
	// raw samples carry no summary
}
