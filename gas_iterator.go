// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"github.com/offchainlabs/gasstore/kvStorage"
)

type gasIterator struct {
	store *GasStore
	inner kvStorage.Iterator
	done  bool
}

func (it *gasIterator) Next() bool {
	if it.done {
		return false
	}
	if !it.advance() {
		it.done = true
		return false
	}
	key, value := it.inner.Key(), it.inner.Value()
	it.store.charge(OpIterNext, it.store.costs.IterNextCharge(key, value))
	return true
}

func (it *gasIterator) advance() bool {
	_, release := it.store.storage.borrow()
	defer release()
	return it.inner.Next()
}

func (it *gasIterator) Key() []byte {
	return it.inner.Key()
}

func (it *gasIterator) Value() []byte {
	return it.inner.Value()
}

func (it *gasIterator) Release() {
	it.done = true
	it.inner.Release()
}
