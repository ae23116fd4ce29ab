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

	"github.com/spf13/cobra"

	"github.com/pingcap/go-linear/db/cassandra"
)

var (
	keyspaceArg    string
	tableArg       string
	replicationArg int
)

func runSchemaCommandFunc(_ *cobra.Command, _ []string) {
	for _, stmt := range cassandra.Schema(keyspaceArg, tableArg, replicationArg) {
		fmt.Println(stmt)
	}
}

func newSchemaCommand() *cobra.Command {
	m := &cobra.Command{
		Use:   "schema",
		Short: "Print the register table DDL",
		Run:   runSchemaCommandFunc,
	}

	m.Flags().StringVar(&keyspaceArg, "keyspace", "linear", "Keyspace holding the register table")
	m.Flags().StringVar(&tableArg, "table", "registers", "Register table name")
	m.Flags().IntVar(&replicationArg, "replication", 3, "Keyspace replication factor")

	return m
}
