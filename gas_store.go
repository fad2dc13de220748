// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"io"

	"go.uber.org/zap"

	"github.com/offchainlabs/gasstore/kvStorage"
)

// GasStore wraps a KVStorage and charges gas for every access. Results from the
// wrapped storage are returned unchanged.
//
// The counter and the wrapped storage sit behind runtime-checked cells, so a
// store reached through a SharedGasStore handle is still charged. A GasStore is
// not safe for concurrent use; conflicting access panics.
type GasStore struct {
	storage *refCell[kvStorage.KVStorage]
	usage   *refCell[GasUsage]
	costs   CostModel
	logger  *zap.Logger
	metrics *Metrics
}

var _ kvStorage.KVStorage = (*GasStore)(nil)

type Opt func(*GasStore)

// WithStorage replaces the default in-memory storage. The store takes ownership
// of storage and closes it on Close.
func WithStorage(storage kvStorage.KVStorage) Opt {
	return func(s *GasStore) {
		s.storage = newRefCell("storage", storage)
	}
}

func WithLogger(logger *zap.Logger) Opt {
	return func(s *GasStore) {
		s.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Opt {
	return func(s *GasStore) {
		s.metrics = metrics
	}
}

// New creates a memory backed store priced with DefaultCostModel.
func New(opts ...Opt) *GasStore {
	return NewWithCostModel(DefaultCostModel(), opts...)
}

func NewWithCostModel(costs CostModel, opts ...Opt) *GasStore {
	s := &GasStore{
		usage:  newRefCell("gas usage", GasUsage{}),
		costs:  costs,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.storage == nil {
		s.storage = newRefCell[kvStorage.KVStorage]("storage", kvStorage.NewMemoryKVStorage())
	}
	s.logger = s.logger.Named("gasstore")
	return s
}

func (s *GasStore) Get(key []byte) ([]byte, bool) {
	storage, release := s.storage.borrow()
	value, found := func() ([]byte, bool) {
		defer release()
		return (*storage).Get(key)
	}()
	s.charge(OpRead, s.costs.ReadCharge(key, value))
	return value, found
}

func (s *GasStore) Set(key, value []byte) {
	storage, release := s.storage.borrowMut()
	func() {
		defer release()
		(*storage).Set(key, value)
	}()
	s.charge(OpWrite, s.costs.WriteCharge(key, value))
}

// Remove is charged the flat delete cost whether or not key exists.
func (s *GasStore) Remove(key []byte) {
	storage, release := s.storage.borrowMut()
	func() {
		defer release()
		(*storage).Remove(key)
	}()
	s.charge(OpDelete, s.costs.DeleteCharge())
}

// Range charges nothing up front. Every record pulled from the returned iterator
// is charged as it is reached, so abandoning the iterator early only pays for the
// records already seen.
func (s *GasStore) Range(start, end []byte, order kvStorage.Order) kvStorage.Iterator {
	storage, release := s.storage.borrow()
	defer release()
	return &gasIterator{
		store: s,
		inner: (*storage).Range(start, end, order),
	}
}

func (s *GasStore) charge(op Operation, amount uint64) {
	usage, release := s.usage.borrowMut()
	usage.charge(op, amount)
	total := usage.Total
	release()

	if s.metrics != nil {
		s.metrics.observe(op, amount)
	}
	if ce := s.logger.Check(zap.DebugLevel, "gas charged"); ce != nil {
		ce.Write(
			zap.Stringer("operation", op),
			zap.Uint64("gas", amount),
			zap.Uint64("total", total),
		)
	}
}

func (s *GasStore) TotalGasUsed() uint64 {
	usage, release := s.usage.borrow()
	defer release()
	return usage.Total
}

func (s *GasStore) LastGasUsed() uint64 {
	usage, release := s.usage.borrow()
	defer release()
	return usage.Last
}

// GasUsed returns a copy of the whole counter.
func (s *GasStore) GasUsed() GasUsage {
	usage, release := s.usage.borrow()
	defer release()
	return *usage
}

func (s *GasStore) CostModel() CostModel {
	return s.costs
}

// ResetGas zeroes the running total. Last and the per-operation counts are kept:
// reset clears the bill, not the history.
func (s *GasStore) ResetGas() {
	usage, release := s.usage.borrowMut()
	defer release()
	usage.Total = 0
}

func (s *GasStore) LogGas() {
	s.logger.Info("storage gas usage", zap.Object("gas", s.GasUsed()))
}

// Shared returns a handle for callers that must not own the store.
func (s *GasStore) Shared() SharedGasStore {
	return SharedGasStore{store: s}
}

// Close closes the wrapped storage if it holds resources.
func (s *GasStore) Close() error {
	storage, release := s.storage.borrowMut()
	defer release()
	if closer, ok := (*storage).(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
