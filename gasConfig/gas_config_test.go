// Copyright 2024, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE

package gasConfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offchainlabs/gasstore"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCostModelDefaults(t *testing.T) {
	costs, err := LoadCostModel("", viper.New())
	require.NoError(t, err)
	assert.Equal(t, costs, gasstore.DefaultCostModel())
}

func TestLoadCostModelOverrides(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[storage-gas]
write-cost-flat = 4000
read-cost-per-byte = 5
read-key-only = true
`)
	costs, err := LoadCostModel(path, viper.New())
	require.NoError(t, err)

	expected := gasstore.DefaultCostModel()
	expected.WriteCostFlat = 4000
	expected.ReadCostPerByte = 5
	expected.ReadKeyOnly = true
	assert.Equal(t, costs, expected)
}

func TestLoadCostModelJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"storage-gas": {"delete-cost": 12, "iter-next-cost-flat": 0}}`)
	costs, err := LoadCostModel(path, viper.New())
	require.NoError(t, err)
	assert.Equal(t, costs.DeleteCost, uint64(12))
	assert.Equal(t, costs.IterNextCostFlat, uint64(0))
	assert.Equal(t, costs.ReadCostFlat, uint64(1000))
}

func TestLoadCostModelWithoutSection(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[logging]
level = "info"
`)
	costs, err := LoadCostModel(path, viper.New())
	require.NoError(t, err)
	assert.Equal(t, costs, gasstore.DefaultCostModel())
}

func TestLoadCostModelErrors(t *testing.T) {
	_, err := LoadCostModel(filepath.Join(t.TempDir(), "missing.toml"), viper.New())
	assert.ErrorContains(t, err, "failed to read config file")

	path := writeConfig(t, "config.toml", `
[storage-gas]
write-cost-flatt = 4000
`)
	_, err = LoadCostModel(path, viper.New())
	assert.ErrorContains(t, err, "write-cost-flatt")

	path = writeConfig(t, "config.toml", `
[storage-gas]
delete-cost = -1
`)
	_, err = LoadCostModel(path, viper.New())
	assert.ErrorContains(t, err, "must not be negative")
}

func TestDecodeCostModel(t *testing.T) {
	costs, err := DecodeCostModel(map[string]any{
		"has-cost":        uint64(0),
		"write-cost-flat": "2500",
		"read-cost-flat":  900,
	})
	require.NoError(t, err)
	assert.Equal(t, costs.HasCost, uint64(0))
	assert.Equal(t, costs.WriteCostFlat, uint64(2500))
	assert.Equal(t, costs.ReadCostFlat, uint64(900))
	assert.Equal(t, costs.WriteCostPerByte, uint64(30))

	_, err = DecodeCostModel(map[string]any{"gas-price": 1})
	assert.ErrorContains(t, err, "gas-price")

	_, err = DecodeCostModel(map[string]any{"read-cost-flat": -3})
	assert.ErrorContains(t, err, "must not be negative")

	_, err = DecodeCostModel(map[string]any{"read-cost-flat": "-3"})
	assert.Error(t, err)
}
