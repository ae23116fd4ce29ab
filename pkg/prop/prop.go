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

package prop

// Properties
const (
	Store = "store"

	// Registers is the number of registers the workload draws from;
	// register ids are 1..registers.
	Registers        = "registers"
	RegistersDefault = int64(3)

	ThreadCount        = "threadcount"
	ThreadCountDefault = int64(4)

	OperationCount        = "operationcount"
	OperationCountDefault = int64(1000)

	// UpperBound bounds written values: write and cas draw from
	// [0, upperbound).
	UpperBound        = "upperbound"
	UpperBoundDefault = int64(5)

	// TimeOffset is added, in nanoseconds, to every emitted timestamp so
	// the history lines up with an external clock base.
	TimeOffset        = "timeoffset"
	TimeOffsetDefault = int64(0)

	// HistoryOutput is the path the history stream is written to, empty
	// for stdout.
	HistoryOutput        = "history.output"
	HistoryOutputDefault = ""

	LogInterval        = "measurement.interval"
	LogIntervalDefault = int64(10)

	MeasurementType          = "measurementtype"
	MeasurementTypeDefault   = "histogram"
	MeasurementRawOutputFile = "measurement.output_file"

	OutputStyle = "outputstyle"

	Verbose        = "verbose"
	VerboseDefault = false

	Silence        = "silence"
	SilenceDefault = true

	DebugPprof        = "debug.pprof"
	DebugPprofDefault = ":6060"

	Command = "command"
)
