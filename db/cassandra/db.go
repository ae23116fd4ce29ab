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

package cassandra

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/magiconair/properties"
	"github.com/pingcap/errors"

	"github.com/pingcap/go-linear/pkg/linear"
	"github.com/pingcap/go-linear/pkg/prop"
)

// cassandra properties
const (
	cassandraCluster     = "cassandra.cluster"
	cassandraKeyspace    = "cassandra.keyspace"
	cassandraTable       = "cassandra.table"
	cassandraConnections = "cassandra.connections"
	cassandraUsername    = "cassandra.username"
	cassandraPassword    = "cassandra.password"
	cassandraReplication = "cassandra.replication"

	cassandraClusterDefault     = "127.0.0.1:9042"
	cassandraKeyspaceDefault    = "linear"
	cassandraTableDefault       = "registers"
	cassandraConnectionsDefault = 2 // refer to https://github.com/gocql/gocql/blob/master/cluster.go#L52
	cassandraReplicationDefault = 3
)

// readSentinel never appears as a register value: written values live in
// [0, upperbound). A cas against it always misses, which turns a
// lightweight transaction into a linearizable read of the current row.
const readSentinel = int64(-1)

type cassandraCreator struct {
}

type cassandraStore struct {
	p       *properties.Properties
	session *gocql.Session
	verbose bool

	writeCQL  string
	insertCQL string
	readCQL   string
	casCQL    string
}

func (c cassandraCreator) Create(p *properties.Properties) (linear.Store, error) {
	hosts := strings.Split(p.GetString(cassandraCluster, cassandraClusterDefault), ",")

	cluster := gocql.NewCluster(hosts...)
	cluster.NumConns = p.GetInt(cassandraConnections, cassandraConnectionsDefault)
	cluster.Timeout = 10 * time.Second
	cluster.Consistency = gocql.Quorum

	if username := p.GetString(cassandraUsername, ""); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: p.GetString(cassandraPassword, ""),
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Annotate(err, "create cassandra session")
	}

	keyspace := p.GetString(cassandraKeyspace, cassandraKeyspaceDefault)
	table := p.GetString(cassandraTable, cassandraTableDefault)

	s := &cassandraStore{
		p:       p,
		session: session,
		verbose: p.GetBool(prop.Verbose, prop.VerboseDefault),

		writeCQL:  fmt.Sprintf(`UPDATE %s.%s SET val = ? WHERE id = ? IF EXISTS`, keyspace, table),
		insertCQL: fmt.Sprintf(`INSERT INTO %s.%s (id, val) VALUES (?, ?) IF NOT EXISTS`, keyspace, table),
		readCQL:   fmt.Sprintf(`UPDATE %s.%s SET val = %d WHERE id = ? IF val = %d`, keyspace, table, readSentinel, readSentinel),
		casCQL:    fmt.Sprintf(`UPDATE %s.%s SET val = ? WHERE id = ? IF val = ?`, keyspace, table),
	}

	if err := s.createSchema(); err != nil {
		session.Close()
		return nil, errors.Annotate(err, "create cassandra schema")
	}

	return s, nil
}

func (s *cassandraStore) createSchema() error {
	keyspace := s.p.GetString(cassandraKeyspace, cassandraKeyspaceDefault)
	table := s.p.GetString(cassandraTable, cassandraTableDefault)
	replication := s.p.GetInt(cassandraReplication, cassandraReplicationDefault)

	for _, stmt := range Schema(keyspace, table, replication) {
		if s.verbose {
			fmt.Fprintln(os.Stderr, stmt)
		}
		if err := s.session.Query(stmt).Exec(); err != nil {
			return err
		}
	}
	return nil
}

// Schema returns the DDL statements for the register table. The statements
// are idempotent.
func Schema(keyspace string, table string, replication int) []string {
	return []string{
		fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d};",
			keyspace, replication),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s.%s (id bigint PRIMARY KEY, val bigint);",
			keyspace, table),
	}
}

func (s *cassandraStore) Close() error {
	if s.session == nil {
		return nil
	}

	s.session.Close()
	return nil
}

func (s *cassandraStore) InitThread(ctx context.Context, _ int, _ int) context.Context {
	return ctx
}

func (s *cassandraStore) CleanupThread(_ context.Context) {
}

// execCAS runs one lightweight transaction and returns its applied flag
// along with the previous row, when the store reports one.
func (s *cassandraStore) execCAS(ctx context.Context, stmt string, args ...interface{}) (bool, map[string]interface{}, error) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "%s %v\n", stmt, args)
	}

	q := s.session.Query(stmt, args...).WithContext(ctx).SerialConsistency(gocql.Serial)
	prev := make(map[string]interface{})
	applied, err := q.MapScanCAS(prev)
	if err != nil {
		return false, nil, classifyError(err)
	}
	return applied, prev, nil
}

func (s *cassandraStore) ConditionalWrite(ctx context.Context, register int64, value int64) (bool, error) {
	applied, _, err := s.execCAS(ctx, s.writeCQL, value, register)
	if err != nil || applied {
		return applied, err
	}

	// The register row does not exist yet: one conditional insert, no
	// further retry. Losing the race against another first writer
	// reports not applied.
	applied, _, err = s.execCAS(ctx, s.insertCQL, register, value)
	return applied, err
}

func (s *cassandraStore) CompareAndSwap(ctx context.Context, register int64, expected int64, next int64) (bool, error) {
	applied, _, err := s.execCAS(ctx, s.casCQL, next, register, expected)
	return applied, err
}

func (s *cassandraStore) LinearizableRead(ctx context.Context, register int64) (int64, bool, error) {
	// gocql cannot issue a SELECT at SERIAL consistency, so the read goes
	// through a lightweight transaction that never applies and reports
	// the current row instead.
	applied, prev, err := s.execCAS(ctx, s.readCQL, register)
	if err != nil {
		return 0, false, err
	}
	if applied {
		// the register held the sentinel, which validated configs
		// cannot produce
		return readSentinel, true, nil
	}

	v, ok := prev["val"]
	if !ok {
		return 0, false, nil
	}
	value, ok := v.(int64)
	if !ok {
		return 0, false, errors.Errorf("unexpected val column type %T", v)
	}
	return value, true, nil
}

func classifyError(err error) error {
	switch err.(type) {
	case *gocql.RequestErrUnavailable:
		return errors.Annotate(linear.ErrUnavailable, err.Error())
	case *gocql.RequestErrReadTimeout:
		return errors.Annotate(linear.ErrReadTimeout, err.Error())
	case *gocql.RequestErrWriteTimeout:
		return errors.Annotate(linear.ErrWriteTimeout, err.Error())
	}

	if err == gocql.ErrNoConnections {
		return linear.ErrNoHostAvailable
	}
	return err
}

func init() {
	linear.RegisterStoreCreator("cassandra", cassandraCreator{})
	linear.RegisterStoreCreator("scylla", cassandraCreator{})
}
