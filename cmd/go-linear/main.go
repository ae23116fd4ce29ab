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
	"context"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/magiconair/properties"
	"github.com/spf13/cobra"

	"github.com/pingcap/go-linear/pkg/linear"
	"github.com/pingcap/go-linear/pkg/measurement"
	"github.com/pingcap/go-linear/pkg/prop"
	"github.com/pingcap/go-linear/pkg/util"

	// Register cassandra store
	_ "github.com/pingcap/go-linear/db/cassandra"
	// Register mock store
	_ "github.com/pingcap/go-linear/db/mock"
)

var (
	propertyFiles  []string
	propertyValues []string

	globalContext context.Context
	globalCancel  context.CancelFunc

	globalCreator linear.StoreCreator
	globalProps   *properties.Properties
)

func initialGlobal(storeName string, onProperties func()) {
	globalProps = properties.NewProperties()
	if len(propertyFiles) > 0 {
		globalProps = properties.MustLoadFiles(propertyFiles, properties.UTF8, false)
	}

	for _, pv := range propertyValues {
		seps := strings.SplitN(pv, "=", 2)
		if len(seps) != 2 {
			log.Fatalf("bad property: `%s`, expected format `name=value`", pv)
		}
		globalProps.Set(seps[0], seps[1])
	}

	if onProperties != nil {
		onProperties()
	}

	if err := prop.Validate(globalProps); err != nil {
		util.Fatalf("invalid configuration: %v", err)
	}

	addr := globalProps.GetString(prop.DebugPprof, prop.DebugPprofDefault)
	go func() {
		http.ListenAndServe(addr, nil)
	}()

	measurement.InitMeasure(globalProps)

	globalCreator = linear.GetStoreCreator(storeName)
	if globalCreator == nil {
		util.Fatalf("%s is not registered", storeName)
	}
	globalProps.Set(prop.Store, storeName)
}

func main() {
	globalContext, globalCancel = context.WithCancel(context.Background())

	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	closeDone := make(chan struct{}, 1)
	go func() {
		sig := <-sc
		fmt.Fprintf(os.Stderr, "\nGot signal [%v] to exit.\n", sig)
		globalCancel()

		select {
		case <-sc:
			// send signal again, return directly
			fmt.Fprintf(os.Stderr, "\nGot signal [%v] again to exit.\n", sig)
			os.Exit(1)
		case <-time.After(10 * time.Second):
			fmt.Fprint(os.Stderr, "\nWait 10s for closed, force exit\n")
			os.Exit(1)
		case <-closeDone:
			return
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "go-linear",
		Short: "Concurrent history generator for linearizable register stores",
	}

	rootCmd.AddCommand(
		newRunCommand(),
		newSchemaCommand(),
	)

	cobra.EnablePrefixMatching = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, rootCmd.UsageString())
		os.Exit(1)
	}

	globalCancel()
	closeDone <- struct{}{}
}
