// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package kvStorage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
)

// Backend is the subset of a go-ethereum key/value database the adapter needs.
type Backend interface {
	ethdb.KeyValueReader
	ethdb.KeyValueWriter
	ethdb.Iteratee
}

// EthdbKVStorage exposes an ethdb backend as a KVStorage and tallies how often the
// backend is accessed.
type EthdbKVStorage struct {
	db         Backend
	readCount  uint64
	writeCount uint64
}

func NewEthdbKVStorage(db Backend) *EthdbKVStorage {
	return &EthdbKVStorage{db: db}
}

func NewMemoryKVStorage() *EthdbKVStorage {
	return NewEthdbKVStorage(memorydb.New())
}

func (s *EthdbKVStorage) Get(key []byte) ([]byte, bool) {
	s.readCount++
	has, err := s.db.Has(key)
	if err != nil {
		panic(fmt.Errorf("kv storage has %x: %w", key, err))
	}
	if !has {
		return nil, false
	}
	value, err := s.db.Get(key)
	if err != nil {
		panic(fmt.Errorf("kv storage get %x: %w", key, err))
	}
	return value, true
}

func (s *EthdbKVStorage) Set(key, value []byte) {
	s.writeCount++
	if err := s.db.Put(key, value); err != nil {
		panic(fmt.Errorf("kv storage put %x: %w", key, err))
	}
}

func (s *EthdbKVStorage) Remove(key []byte) {
	s.writeCount++
	if err := s.db.Delete(key); err != nil {
		panic(fmt.Errorf("kv storage delete %x: %w", key, err))
	}
}

// Range snapshots the matching entries, so the store may be written to while the
// returned iterator is still in use.
func (s *EthdbKVStorage) Range(start, end []byte, order Order) Iterator {
	s.readCount++
	records := []Record{}
	if start != nil && end != nil && bytes.Compare(start, end) >= 0 {
		return NewRecordIterator(records)
	}
	it := s.db.NewIterator(nil, start)
	defer it.Release()
	for it.Next() {
		if end != nil && bytes.Compare(it.Key(), end) >= 0 {
			break
		}
		records = append(records, Record{
			Key:   common.CopyBytes(it.Key()),
			Value: common.CopyBytes(it.Value()),
		})
	}
	if err := it.Error(); err != nil {
		panic(fmt.Errorf("kv storage range: %w", err))
	}
	if order == Descending {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
	return NewRecordIterator(records)
}

func (s *EthdbKVStorage) Close() error {
	if closer, ok := s.db.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (s *EthdbKVStorage) GetAccessCounts() (uint64, uint64) {
	return s.readCount, s.writeCount
}
