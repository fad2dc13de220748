// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/gasstore/kvStorage"
)

// initBalance stands in for a harness that only ever receives the storage
// interface and never owns it.
func initBalance(storage kvStorage.KVStorage, account string, amount byte) {
	storage.Set([]byte("balance/"+account), []byte{amount})
}

func TestSharedHandleChargesTheStore(t *testing.T) {
	store := New()
	shared := store.Shared()

	initBalance(shared, "admin", 100)
	gas := store.GasUsed()
	assert.Equal(t, gas.WriteCount, uint64(1))
	assert.Equal(t, gas.Last, uint64(2000+(13+1)*30))
	assert.Equal(t, shared.GasUsed(), gas)

	// the write is visible through the owned store
	value, found := store.Get([]byte("balance/admin"))
	assert.Equal(t, found, true)
	assert.Equal(t, value, []byte{100})

	value, found = shared.Get([]byte("balance/admin"))
	assert.Equal(t, found, true)
	assert.Equal(t, value, []byte{100})
	assert.Equal(t, store.GasUsed().ReadCount, uint64(2))

	shared.Remove([]byte("balance/admin"))
	assert.Equal(t, shared.LastGasUsed(), uint64(1000))
	assert.Equal(t, store.GasUsed().DeleteCount, uint64(1))
	assert.Equal(t, shared.TotalGasUsed(), store.TotalGasUsed())
}

func TestSharedAndOwnedChargeIdentically(t *testing.T) {
	run := func(storage kvStorage.KVStorage) {
		storage.Set([]byte("a"), []byte("alpha"))
		storage.Set([]byte("b"), []byte("beta"))
		storage.Get([]byte("a"))
		storage.Get([]byte("zzz"))
		it := storage.Range([]byte("a"), nil, kvStorage.Ascending)
		for it.Next() {
		}
		it.Release()
		storage.Remove([]byte("b"))
	}

	owned := New()
	run(owned)
	viaHandle := New()
	run(viaHandle.Shared())

	assert.Equal(t, owned.GasUsed(), viaHandle.GasUsed())
	assert.Equal(t, viaHandle.GasUsed().IterNextCount, uint64(2))
}

func TestSharedHandlesShareOneCounter(t *testing.T) {
	store := New()
	first, second := store.Shared(), store.Shared()

	first.Set([]byte("k"), []byte("v"))
	second.Set([]byte("k"), []byte("w"))
	assert.Equal(t, store.GasUsed().WriteCount, uint64(2))

	it := second.Range(nil, nil, kvStorage.Descending)
	require.True(t, it.Next())
	assert.Equal(t, it.Value(), []byte("w"))
	it.Release()
	assert.Equal(t, first.GasUsed().IterNextCount, uint64(1))

	store.ResetGas()
	assert.Equal(t, first.TotalGasUsed(), uint64(0))
	assert.Equal(t, second.LastGasUsed(), uint64(30+1000+2*3))
}

func TestSharedWriteDuringOwnedWritePanics(t *testing.T) {
	storage := &callbackStorage{KVStorage: kvStorage.NewMemoryKVStorage()}
	store := New(WithStorage(storage))
	shared := store.Shared()

	storage.onSet = func() { shared.Set([]byte("inner"), nil) }
	requirePanicsWith(t, ErrAlreadyBorrowed, func() { store.Set([]byte("outer"), nil) })
	assert.Equal(t, shared.GasUsed(), GasUsage{})
}
