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

package client

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/magiconair/properties"
	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/generator"
	"github.com/pingcap/go-linear/pkg/history"
	"github.com/pingcap/go-linear/pkg/linear"
	"github.com/pingcap/go-linear/pkg/measurement"
	"github.com/pingcap/go-linear/pkg/prop"
)

type worker struct {
	store    storeWrapper
	threadID int
	opCount  int64
	opsDone  int64

	r          *rand.Rand
	opChooser  *generator.Discrete
	regChooser linear.Generator
	valChooser linear.Generator

	process int64
	ledger  *processLedger
	emitter *history.Emitter
	clock   *history.Clock
}

func newWorker(p *properties.Properties, threadID int, threadCount int, store linear.Store,
	ledger *processLedger, emitter *history.Emitter, clock *history.Clock) *worker {
	w := new(worker)
	w.store = storeWrapper{store: store}
	w.threadID = threadID

	total := p.GetInt64(prop.OperationCount, prop.OperationCountDefault)
	w.opCount = total / int64(threadCount)

	// independent stream per worker so histories are uncorrelated
	w.r = rand.New(rand.NewSource(time.Now().UnixNano() + int64(threadID)))

	w.opChooser = generator.NewDiscrete()
	w.opChooser.Add(1, int64(history.OpWrite))
	w.opChooser.Add(1, int64(history.OpCAS))
	w.opChooser.Add(1, int64(history.OpRead))

	registers := p.GetInt64(prop.Registers, prop.RegistersDefault)
	w.regChooser = generator.NewUniform(1, registers)

	upper := p.GetInt64(prop.UpperBound, prop.UpperBoundDefault)
	w.valChooser = generator.NewUniform(0, upper-1)

	w.ledger = ledger
	w.emitter = emitter
	w.clock = clock
	w.process = ledger.next()

	return w
}

// nextInvoke draws the next operation and builds its invoke record.
func (w *worker) nextInvoke() history.Record {
	op := history.Op(w.opChooser.Next(w.r))

	var value history.Value
	switch op {
	case history.OpWrite:
		value = history.IntValue(w.valChooser.Next(w.r))
	case history.OpCAS:
		expected := w.valChooser.Next(w.r)
		next := w.valChooser.Next(w.r)
		value = history.PairValue(expected, next)
	case history.OpRead:
		value = history.NoValue()
	}

	return history.Record{
		Type:     history.TypeInvoke,
		Op:       op,
		Time:     w.clock.Now(),
		Process:  w.process,
		Register: w.regChooser.Next(w.r),
		Value:    value,
	}
}

func (w *worker) run(ctx context.Context) {
	for w.opsDone < w.opCount {
		inv := w.nextInvoke()
		w.emitter.Emit(inv)

		value, vd := w.store.do(ctx, inv.Op, inv.Register, inv.Value)

		res := inv
		res.Type = vd.typ
		res.Time = w.clock.Now()
		res.Value = value
		res.Cause = vd.cause
		res.Error = vd.err
		w.emitter.Emit(res)

		if vd.typ == history.TypeInfo {
			// The ambiguous operation stays on the old process id;
			// everything after it runs under a fresh one.
			w.process = w.ledger.next()
		}

		w.opsDone++

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// Client drives the workload against a store and emits the history.
type Client struct {
	p       *properties.Properties
	creator linear.StoreCreator
	emitter *history.Emitter
	clock   *history.Clock
}

// NewClient returns a client emitting through the given emitter and clock.
// The creator is invoked once per worker so every worker owns an
// independent store session.
func NewClient(p *properties.Properties, creator linear.StoreCreator, emitter *history.Emitter, clock *history.Clock) *Client {
	return &Client{p: p, creator: creator, emitter: emitter, clock: clock}
}

// Run opens one store session per worker, runs all workers to the end of
// their operation budgets, and blocks until they finish. A session that
// cannot be established aborts the whole run.
func (c *Client) Run(ctx context.Context) error {
	threadCount := int(c.p.GetInt64(prop.ThreadCount, prop.ThreadCountDefault))

	stores := make([]linear.Store, 0, threadCount)
	for i := 0; i < threadCount; i++ {
		store, err := c.creator.Create(c.p)
		if err != nil {
			for _, s := range stores {
				s.Close()
			}
			return errors.Annotatef(err, "create store session for worker %d", i)
		}
		stores = append(stores, store)
	}

	measureCtx, measureCancel := context.WithCancel(ctx)
	measureCh := make(chan struct{}, 1)
	go func() {
		defer func() {
			measureCh <- struct{}{}
		}()

		dur := c.p.GetInt64(prop.LogInterval, prop.LogIntervalDefault)
		t := time.NewTicker(time.Duration(dur) * time.Second)
		defer t.Stop()

		for {
			select {
			case <-t.C:
				measurement.Summary()
			case <-measureCtx.Done():
				return
			}
		}
	}()

	ledger := newProcessLedger()

	var wg sync.WaitGroup
	wg.Add(threadCount)
	for i := range stores {
		go func(threadID int, store linear.Store) {
			defer wg.Done()

			w := newWorker(c.p, threadID, threadCount, store, ledger, c.emitter, c.clock)
			ctx := store.InitThread(ctx, threadID, threadCount)
			w.run(ctx)
			store.CleanupThread(ctx)
		}(i, stores[i])
	}

	wg.Wait()
	measureCancel()
	<-measureCh

	for _, s := range stores {
		s.Close()
	}
	return nil
}
