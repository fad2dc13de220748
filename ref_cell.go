// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

var (
	ErrAlreadyBorrowed        = errors.New("already borrowed")
	ErrAlreadyMutablyBorrowed = errors.New("already mutably borrowed")
)

const exclusive int32 = -1

// refCell guards a value with a runtime borrow flag: any number of shared borrows
// or exactly one exclusive borrow. A conflicting borrow panics instead of waiting,
// since the only way to get one is reentrant or concurrent misuse of the store.
type refCell[T any] struct {
	name  string
	state atomic.Int32 // >0 shared borrows, -1 exclusive, 0 free
	value T
}

func newRefCell[T any](name string, value T) *refCell[T] {
	return &refCell[T]{name: name, value: value}
}

func (c *refCell[T]) borrow() (*T, func()) {
	for {
		n := c.state.Load()
		if n == exclusive {
			panic(fmt.Errorf("%s: %w", c.name, ErrAlreadyMutablyBorrowed))
		}
		if c.state.CompareAndSwap(n, n+1) {
			return &c.value, c.release
		}
	}
}

func (c *refCell[T]) borrowMut() (*T, func()) {
	if !c.state.CompareAndSwap(0, exclusive) {
		panic(fmt.Errorf("%s: %w", c.name, ErrAlreadyBorrowed))
	}
	return &c.value, c.releaseMut
}

func (c *refCell[T]) release() {
	c.state.Dec()
}

func (c *refCell[T]) releaseMut() {
	c.state.Store(0)
}
