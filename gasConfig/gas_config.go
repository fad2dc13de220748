// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasConfig

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/offchainlabs/gasstore"
)

// SectionKey is the config file section holding the storage cost model.
const SectionKey = "storage-gas"

// LoadCostModel reads fileLocation into vip and decodes its storage-gas section on
// top of the default cost model. Keys missing from the file keep their defaults.
// An empty fileLocation returns the defaults.
func LoadCostModel(fileLocation string, vip *viper.Viper) (gasstore.CostModel, error) {
	costs := gasstore.DefaultCostModel()
	if fileLocation == "" {
		return costs, nil
	}
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return costs, fmt.Errorf("failed to read config file %v: %w", fileLocation, err)
	}
	if !vip.IsSet(SectionKey) {
		return costs, nil
	}
	err := vip.UnmarshalKey(SectionKey, &costs, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
		if dc.DecodeHook == nil {
			dc.DecodeHook = rejectNegative
			return
		}
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(dc.DecodeHook, rejectNegative)
	})
	if err != nil {
		return gasstore.DefaultCostModel(), fmt.Errorf("parse %s: %w", SectionKey, err)
	}
	return costs, nil
}

// DecodeCostModel decodes raw settings on top of the default cost model. Unknown
// keys are rejected and numeric strings are accepted.
func DecodeCostModel(raw map[string]any) (gasstore.CostModel, error) {
	costs := gasstore.DefaultCostModel()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       rejectNegative,
		Result:           &costs,
	})
	if err != nil {
		return costs, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return gasstore.DefaultCostModel(), fmt.Errorf("decode cost model: %w", err)
	}
	return costs, nil
}

// rejectNegative stops weakly typed decoding from wrapping negative numbers into
// huge unsigned costs.
func rejectNegative(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Uint64 {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if reflect.ValueOf(data).Int() < 0 {
			return nil, fmt.Errorf("cost must not be negative, got %v", data)
		}
	case reflect.Float32, reflect.Float64:
		if reflect.ValueOf(data).Float() < 0 {
			return nil, fmt.Errorf("cost must not be negative, got %v", data)
		}
	}
	return data, nil
}
