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

package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Measurement output styles. The history stream on stdout is the
// machine-readable artifact; these only shape the human-facing summary.
const (
	OutputStylePlain = "plain"
	OutputStyleTable = "table"
)

// RenderString renders each row as one formatted line: the first column
// through format, the rest as "Header: value" pairs.
func RenderString(w io.Writer, format string, headers []string, values [][]string) {
	if len(values) == 0 {
		return
	}

	for _, value := range values {
		pairs := make([]string, len(headers)-1)
		for i, header := range headers[1:] {
			pairs[i] = header + ": " + value[i+1]
		}
		fmt.Fprintf(w, format, value[0], strings.Join(pairs, ", "))
	}
}

// RenderTable renders headers and values as a table.
func RenderTable(w io.Writer, headers []string, values [][]string) {
	if len(values) == 0 {
		return
	}
	tb := tablewriter.NewWriter(w)
	tb.SetHeader(headers)
	tb.AppendBulk(values)
	tb.Render()
}

// IntToString formats int value to string
func IntToString(i interface{}) string {
	return fmt.Sprintf("%d", i)
}

// FloatToOneString formats float into string with one digit after dot
func FloatToOneString(f interface{}) string {
	return fmt.Sprintf("%.1f", f)
}
