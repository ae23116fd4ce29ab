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

package history

import "strconv"

// Op is the register operation a record describes.
type Op int64

// Operations.
const (
	OpWrite Op = iota
	OpCAS
	OpRead
)

func (o Op) String() string {
	switch o {
	case OpWrite:
		return "write"
	case OpCAS:
		return "cas"
	case OpRead:
		return "read"
	}
	return "unknown"
}

// Type tells whether a record is the invocation of an operation or one of
// its terminal outcomes. An invoke is always followed by exactly one
// terminal record from the same process.
type Type int

// Record types. An ok operation definitely applied, a fail definitely did
// not, an info left the store in an unknown state, and an error is an
// unhandled failure.
const (
	TypeInvoke Type = iota
	TypeOK
	TypeFail
	TypeInfo
	TypeError
)

func (t Type) String() string {
	switch t {
	case TypeInvoke:
		return "invoke"
	case TypeOK:
		return "ok"
	case TypeFail:
		return "fail"
	case TypeInfo:
		return "info"
	case TypeError:
		return "error"
	}
	return "unknown"
}

// Cause classifies why a fail or info terminal happened.
type Cause int

// Causes.
const (
	CauseNone Cause = iota
	CauseUnavailable
	CauseReadTimeout
	CauseWriteTimeout
	CauseNoHost
)

func (c Cause) String() string {
	switch c {
	case CauseUnavailable:
		return "unavailable"
	case CauseReadTimeout:
		return "read-timed-out"
	case CauseWriteTimeout:
		return "write-timed-out"
	case CauseNoHost:
		return "nohost"
	}
	return ""
}

type valueKind int

const (
	valueNone valueKind = iota
	valueNil
	valueInt
	valuePair
)

// Value is the payload of an operation: absent (a read invoke), an
// explicit nil (a read of a register that was never written), a single
// integer (write, read result), or an [expected new] pair (cas).
type Value struct {
	kind valueKind
	a    int64
	b    int64
}

// NoValue returns the absent value. The record renders without a :value
// field at all.
func NoValue() Value {
	return Value{}
}

// NilValue returns the explicit nil value, rendered as ":value nil".
func NilValue() Value {
	return Value{kind: valueNil}
}

// IntValue returns a single integer value.
func IntValue(v int64) Value {
	return Value{kind: valueInt, a: v}
}

// PairValue returns a cas [expected new] pair.
func PairValue(expected int64, next int64) Value {
	return Value{kind: valuePair, a: expected, b: next}
}

// IsAbsent reports whether the value is absent. An explicit nil is not
// absent.
func (v Value) IsAbsent() bool {
	return v.kind == valueNone
}

// Int returns the single integer payload.
func (v Value) Int() (int64, bool) {
	return v.a, v.kind == valueInt
}

// Pair returns the cas payload.
func (v Value) Pair() (expected int64, next int64, ok bool) {
	return v.a, v.b, v.kind == valuePair
}

func (v Value) appendTo(b []byte) []byte {
	switch v.kind {
	case valueInt:
		b = strconv.AppendInt(b, v.a, 10)
	case valuePair:
		b = append(b, '[')
		b = strconv.AppendInt(b, v.a, 10)
		b = append(b, ' ')
		b = strconv.AppendInt(b, v.b, 10)
		b = append(b, ']')
	default:
		b = append(b, "nil"...)
	}
	return b
}

// Record is one history line: the invocation of a register operation or
// its terminal outcome.
type Record struct {
	Type     Type
	Op       Op
	Time     int64
	Process  int64
	Register int64
	Value    Value
	Cause    Cause
	Error    string
}

// appendTo renders the record as one edn map literal, the form the
// downstream checker consumes.
func (r Record) appendTo(b []byte) []byte {
	b = append(b, "{:type :"...)
	b = append(b, r.Type.String()...)
	b = append(b, ", :f :"...)
	b = append(b, r.Op.String()...)
	if !r.Value.IsAbsent() {
		b = append(b, ", :value "...)
		b = r.Value.appendTo(b)
	}
	b = append(b, ", :time "...)
	b = strconv.AppendInt(b, r.Time, 10)
	b = append(b, ", :process "...)
	b = strconv.AppendInt(b, r.Process, 10)
	b = append(b, ", :register "...)
	b = strconv.AppendInt(b, r.Register, 10)
	if r.Cause != CauseNone {
		b = append(b, ", :cause :"...)
		b = append(b, r.Cause.String()...)
	}
	if r.Error != "" {
		b = append(b, ", :error "...)
		b = strconv.AppendQuote(b, r.Error)
	}
	b = append(b, '}')
	return b
}

func (r Record) String() string {
	return string(r.appendTo(nil))
}
