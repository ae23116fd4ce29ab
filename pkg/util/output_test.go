package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderString(t *testing.T) {
	headers := []string{"Operation", "Count", "Avg(us)"}
	values := [][]string{
		{"READ", "10", "42"},
		{"WRITE", "7", "55"},
	}

	var buf bytes.Buffer
	RenderString(&buf, "%-11s - %s\n", headers, values)

	want := "READ        - Count: 10, Avg(us): 42\n" +
		"WRITE       - Count: 7, Avg(us): 55\n"
	if got := buf.String(); got != want {
		t.Errorf("want %q, but got %q", want, got)
	}

	buf.Reset()
	RenderString(&buf, "%s - %s\n", headers, nil)
	if buf.Len() != 0 {
		t.Errorf("want no output for empty values, but got %q", buf.String())
	}
}

func TestRenderTable(t *testing.T) {
	headers := []string{"Operation", "Count"}
	values := [][]string{{"CAS", "3"}}

	var buf bytes.Buffer
	RenderTable(&buf, headers, values)

	out := buf.String()
	if !strings.Contains(out, "CAS") || !strings.Contains(out, "3") {
		t.Errorf("table output missing values: %q", out)
	}
}
