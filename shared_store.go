// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"github.com/offchainlabs/gasstore/kvStorage"
)

// SharedGasStore is a non-owning handle to a GasStore. It prices every operation
// exactly like the store it refers to and writes through to the same storage and
// counter, but cannot close the store or reset its bill.
type SharedGasStore struct {
	store *GasStore
}

var _ kvStorage.KVStorage = SharedGasStore{}

func (h SharedGasStore) Get(key []byte) ([]byte, bool) {
	return h.store.Get(key)
}

func (h SharedGasStore) Range(start, end []byte, order kvStorage.Order) kvStorage.Iterator {
	return h.store.Range(start, end, order)
}

// Set and Remove mutate through the shared handle; the borrow cells in the store
// still reject a write that overlaps another access.
func (h SharedGasStore) Set(key, value []byte) {
	h.store.Set(key, value)
}

func (h SharedGasStore) Remove(key []byte) {
	h.store.Remove(key)
}

func (h SharedGasStore) TotalGasUsed() uint64 {
	return h.store.TotalGasUsed()
}

func (h SharedGasStore) LastGasUsed() uint64 {
	return h.store.LastGasUsed()
}

func (h SharedGasStore) GasUsed() GasUsage {
	return h.store.GasUsed()
}
