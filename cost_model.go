// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasstore

// CostModel holds the per-operation prices charged by a GasStore. Flat costs are
// gas per operation, PerByte costs are gas per byte of key plus value.
type CostModel struct {
	// HasCost is carried for parity with the sdk's KV gas config. No operation charges it.
	HasCost          uint64 `mapstructure:"has-cost"`
	DeleteCost       uint64 `mapstructure:"delete-cost"`
	ReadCostFlat     uint64 `mapstructure:"read-cost-flat"`
	ReadCostPerByte  uint64 `mapstructure:"read-cost-per-byte"`
	WriteCostFlat    uint64 `mapstructure:"write-cost-flat"`
	WriteCostPerByte uint64 `mapstructure:"write-cost-per-byte"`
	IterNextCostFlat uint64 `mapstructure:"iter-next-cost-flat"`

	// ReadKeyOnly excludes the returned value from the Get charge. Range steps
	// always charge for the value.
	ReadKeyOnly bool `mapstructure:"read-key-only"`
}

func DefaultCostModel() CostModel {
	return CostModel{
		HasCost:          1000,
		DeleteCost:       1000,
		ReadCostFlat:     1000,
		ReadCostPerByte:  3,
		WriteCostFlat:    2000,
		WriteCostPerByte: 30,
		IterNextCostFlat: 30,
	}
}

func (cm CostModel) ReadCharge(key, value []byte) uint64 {
	size := len(key)
	if !cm.ReadKeyOnly {
		size += len(value)
	}
	return cm.ReadCostFlat + uint64(size)*cm.ReadCostPerByte
}

func (cm CostModel) WriteCharge(key, value []byte) uint64 {
	return cm.WriteCostFlat + uint64(len(key)+len(value))*cm.WriteCostPerByte
}

func (cm CostModel) DeleteCharge() uint64 {
	return cm.DeleteCost
}

func (cm CostModel) IterNextCharge(key, value []byte) uint64 {
	return cm.IterNextCostFlat + cm.ReadCostFlat + uint64(len(key)+len(value))*cm.ReadCostPerByte
}
