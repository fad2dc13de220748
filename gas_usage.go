// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type Operation uint8

const (
	OpRead Operation = iota
	OpWrite
	OpDelete
	OpIterNext
)

func (op Operation) String() string {
	switch op {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpDelete:
		return "delete"
	case OpIterNext:
		return "iter_next"
	default:
		return "unknown"
	}
}

// GasUsage is the running bill of a GasStore. Total is the sum of every charge since
// the last reset, Last is the most recent charge on its own.
type GasUsage struct {
	Total         uint64
	Last          uint64
	ReadCount     uint64
	WriteCount    uint64
	DeleteCount   uint64
	IterNextCount uint64
}

func (u *GasUsage) charge(op Operation, amount uint64) {
	u.Last = amount
	u.Total += amount
	switch op {
	case OpRead:
		u.ReadCount++
	case OpWrite:
		u.WriteCount++
	case OpDelete:
		u.DeleteCount++
	case OpIterNext:
		u.IterNextCount++
	}
}

// MarshalLogObject implements logging encoder for GasUsage.
func (u GasUsage) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("total", u.Total)
	encoder.AddUint64("last", u.Last)
	encoder.AddUint64("read_cnt", u.ReadCount)
	encoder.AddUint64("write_cnt", u.WriteCount)
	encoder.AddUint64("delete_cnt", u.DeleteCount)
	encoder.AddUint64("iter_next_cnt", u.IterNextCount)
	return nil
}

func (u GasUsage) String() string {
	return fmt.Sprintf(
		"GasUsage{total: %d, last: %d, read_cnt: %d, write_cnt: %d, delete_cnt: %d, iter_next_cnt: %d}",
		u.Total, u.Last, u.ReadCount, u.WriteCount, u.DeleteCount, u.IterNextCount,
	)
}
