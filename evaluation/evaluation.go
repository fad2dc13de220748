// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package evaluation

import (
	"encoding/binary"

	"github.com/offchainlabs/gasstore"
	"github.com/offchainlabs/gasstore/kvStorage"
)

type OpKind uint8

const (
	OpGet OpKind = iota
	OpSet
	OpRemove
	OpRange
)

// Op is one step of a workload. Start, End and Order are only used by OpRange.
type Op struct {
	Kind  OpKind
	Key   []byte
	Value []byte
	Start []byte
	End   []byte
	Order kvStorage.Order
}

// KeyFromUint64 encodes i big-endian so numeric and byte order agree.
func KeyFromUint64(i uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte{}, i)
}

// EvaluateOnData replays ops against a fresh memory backed store, driving it only
// through a shared handle the way a test harness would, and drains every range.
func EvaluateOnData(
	costs gasstore.CostModel,
	ops []Op,
) (gasstore.GasUsage, uint64, uint64) { // (gas usage, storageReads, storageWrites)
	storage := kvStorage.NewMemoryKVStorage()
	store := gasstore.NewWithCostModel(costs, gasstore.WithStorage(storage))
	defer store.Close()

	replay(store.Shared(), ops)

	storageReads, storageWrites := storage.GetAccessCounts()
	return store.GasUsed(), storageReads, storageWrites
}

func replay(storage kvStorage.KVStorage, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpGet:
			storage.Get(op.Key)
		case OpSet:
			storage.Set(op.Key, op.Value)
		case OpRemove:
			storage.Remove(op.Key)
		case OpRange:
			it := storage.Range(op.Start, op.End, op.Order)
			for it.Next() {
			}
			it.Release()
		}
	}
}
