// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package kvStorage

type Order uint8

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

type Record struct {
	Key   []byte
	Value []byte
}

// Iterator walks a finite sequence of records. It cannot be restarted; once Next
// returns false a new Range call is needed.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Release()
}

// KVStorage is an ordered byte-keyed map. Range covers keys in [start, end), a nil
// bound meaning unbounded on that side.
type KVStorage interface {
	Get(key []byte) ([]byte, bool)
	Set(key, value []byte)
	Remove(key []byte)
	Range(start, end []byte, order Order) Iterator
}

type recordIterator struct {
	records []Record
	pos     int
}

func NewRecordIterator(records []Record) Iterator {
	return &recordIterator{records: records, pos: -1}
}

func (it *recordIterator) Next() bool {
	if it.pos+1 >= len(it.records) {
		it.pos = len(it.records)
		return false
	}
	it.pos++
	return true
}

func (it *recordIterator) Key() []byte {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	return it.records[it.pos].Key
}

func (it *recordIterator) Value() []byte {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	return it.records[it.pos].Value
}

func (it *recordIterator) Release() {
	it.records = nil
	it.pos = 0
}
