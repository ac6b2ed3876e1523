// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm implements the registry executor and its JSON-RPC service.
package vm

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/registryvm/chain"
)

const (
	Name           = "registryvm"
	PublicEndpoint = "/public"
)

type VM struct {
	config  Config
	genesis *chain.Genesis
	db      database.Database

	clock      func() time.Time
	registerer prometheus.Registerer
	metrics    *metrics

	// Serializes execution so every transaction observes the state left by
	// the previous one. Readers hold it shared so they never observe a
	// partially committed transaction.
	execLock sync.RWMutex

	activityCacheLock   sync.RWMutex
	activityCache       []*chain.Event
	activityCacheCursor uint64
}

type Option func(*VM)

// WithClock overrides the source of block time.
func WithClock(f func() time.Time) Option {
	return func(vm *VM) { vm.clock = f }
}

// WithRegisterer registers the executor metrics with [r] instead of the
// default prometheus registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(vm *VM) { vm.registerer = r }
}

// New returns an executor over [db]. The genesis state is loaded if [db] has
// never been initialized.
func New(g *chain.Genesis, c Config, db database.Database, opts ...Option) (*VM, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}
	vm := &VM{
		config:     c,
		genesis:    g,
		db:         db,
		clock:      time.Now,
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.config.ActivityCacheSize <= 0 {
		return nil, ErrInvalidActivityCacheSize
	}
	vm.activityCache = make([]*chain.Event, vm.config.ActivityCacheSize)

	m, err := newMetrics(vm.registerer)
	if err != nil {
		return nil, err
	}
	vm.metrics = m

	_, err = chain.GetSettings(db)
	switch {
	case err == nil:
		log.Info("found existing state", "magic", g.Magic)
	case errors.Is(err, database.ErrNotFound):
		vdb := versiondb.New(db)
		if err := g.Load(vdb); err != nil {
			vdb.Abort()
			return nil, err
		}
		if err := vdb.Commit(); err != nil {
			return nil, err
		}
		log.Info("initialized state from genesis", "magic", g.Magic, "deployer", g.Deployer)
	default:
		return nil, err
	}
	return vm, nil
}

func (vm *VM) Genesis() *chain.Genesis {
	return vm.genesis
}

func (vm *VM) State() database.KeyValueReader {
	return vm.db
}

func (vm *VM) blockTime() uint64 {
	return uint64(vm.clock().Unix())
}

// Submit executes an initialized transaction atomically. Every write is
// discarded when execution fails.
func (vm *VM) Submit(tx *chain.Transaction) ([]*chain.Event, error) {
	if tx.ID() == ids.Empty {
		return nil, ErrUninitializedTx
	}

	vm.execLock.Lock()
	defer vm.execLock.Unlock()

	start := vm.clock()
	vdb := versiondb.New(vm.db)
	events, err := tx.Execute(vm.genesis, vdb, uint64(start.Unix()))
	if err != nil {
		vdb.Abort()
		vm.metrics.rejected(err)
		log.Debug("rejected tx", "txID", tx.ID(), "sender", tx.Sender(), "kind", chain.Kind(err), "err", err)
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		vm.metrics.rejected(err)
		log.Error("failed to commit tx", "txID", tx.ID(), "err", err)
		return nil, err
	}
	vm.metrics.accepted(vm.clock().Sub(start))
	log.Debug("accepted tx", "txID", tx.ID(), "sender", tx.Sender(), "size", tx.Size())

	for _, e := range events {
		vm.metrics.event(e.Type)
		vm.addActivity(e)
		log.Info("event", "type", e.Type, "txID", e.TxID, "actor", e.Actor, "name", e.Name, "version", e.Version)
	}
	return events, nil
}

// IssueRawTx decodes, initializes and submits a signed transaction.
func (vm *VM) IssueRawTx(b []byte) (ids.ID, []*chain.Event, error) {
	if len(b) == 0 {
		return ids.Empty, nil, ErrInvalidEmptyTx
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(b, tx); err != nil {
		return ids.Empty, nil, err
	}
	if err := tx.Init(vm.genesis); err != nil {
		return ids.Empty, nil, err
	}
	events, err := vm.Submit(tx)
	return tx.ID(), events, err
}

func (vm *VM) HasTx(txID ids.ID) (bool, error) {
	vm.execLock.RLock()
	defer vm.execLock.RUnlock()

	return chain.HasTransaction(vm.db, txID)
}

// Handlers returns the HTTP handlers served by the executor, keyed by path.
func (vm *VM) Handlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: server,
	}, nil
}
