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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pingcap/go-linear/pkg/client"
	"github.com/pingcap/go-linear/pkg/history"
	"github.com/pingcap/go-linear/pkg/measurement"
	"github.com/pingcap/go-linear/pkg/prop"
	"github.com/pingcap/go-linear/pkg/util"
)

var (
	registersArg  int
	threadsArg    int
	operationsArg int
	upperBoundArg int
	hostsArg      string
	timeOffsetArg int64
)

func runRunCommandFunc(cmd *cobra.Command, args []string) {
	storeName := args[0]

	initialGlobal(storeName, func() {
		globalProps.Set(prop.Command, "run")

		if cmd.Flags().Changed("registers") {
			globalProps.Set(prop.Registers, strconv.Itoa(registersArg))
		}
		if cmd.Flags().Changed("threads") {
			globalProps.Set(prop.ThreadCount, strconv.Itoa(threadsArg))
		}
		if cmd.Flags().Changed("operations") {
			globalProps.Set(prop.OperationCount, strconv.Itoa(operationsArg))
		}
		if cmd.Flags().Changed("upperbound") {
			globalProps.Set(prop.UpperBound, strconv.Itoa(upperBoundArg))
		}
		if cmd.Flags().Changed("hosts") {
			globalProps.Set("cassandra.cluster", hostsArg)
		}
		if cmd.Flags().Changed("time-offset") {
			globalProps.Set(prop.TimeOffset, strconv.FormatInt(timeOffsetArg, 10))
		}
	})

	fmt.Fprintln(os.Stderr, "***************** properties *****************")
	for key, value := range globalProps.Map() {
		fmt.Fprintf(os.Stderr, "\"%s\"=\"%s\"\n", key, value)
	}
	fmt.Fprintln(os.Stderr, "**********************************************")

	out := io.Writer(os.Stdout)
	if path := globalProps.GetString(prop.HistoryOutput, prop.HistoryOutputDefault); path != "" {
		f, err := os.Create(path)
		if err != nil {
			util.Fatalf("create history output %s failed %v", path, err)
		}
		defer f.Close()
		out = f
	}

	emitter := history.NewEmitter(out)
	clock := history.NewClock(globalProps.GetInt64(prop.TimeOffset, prop.TimeOffsetDefault))

	c := client.NewClient(globalProps, globalCreator, emitter, clock)
	start := time.Now()
	if err := c.Run(globalContext); err != nil {
		util.Fatalf("run failed %v", err)
	}

	fmt.Fprintf(os.Stderr, "Run finished, takes %s\n", time.Now().Sub(start))
	measurement.Output()
}

func newRunCommand() *cobra.Command {
	m := &cobra.Command{
		Use:   "run store",
		Short: "Generate a concurrent register operation history",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRunCommandFunc,
	}

	m.Flags().StringSliceVarP(&propertyFiles, "property_file", "P", nil, "Specify a property file")
	m.Flags().StringArrayVarP(&propertyValues, "prop", "p", nil, "Specify a property value with name=value")
	m.Flags().IntVarP(&registersArg, "registers", "r", 3, "Number of registers to operate on")
	m.Flags().IntVarP(&threadsArg, "threads", "t", 4, "Execute using n workers - can also be specified as the \"threadcount\" property")
	m.Flags().IntVarP(&operationsArg, "operations", "n", 1000, "Total number of operations across all workers")
	m.Flags().IntVarP(&upperBoundArg, "upperbound", "u", 5, "Written values are drawn from [0, upperbound)")
	m.Flags().StringVar(&hostsArg, "hosts", "127.0.0.1:9042", "Comma separated store hosts")
	m.Flags().Int64Var(&timeOffsetArg, "time-offset", 0, "Offset in nanoseconds added to every emitted timestamp")

	return m
}
