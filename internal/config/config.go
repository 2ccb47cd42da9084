// Package config loads client configuration from a TOML file,
// environment variables and built-in defaults, the same layered
// approach rippled's own config loader uses (file overrides defaults,
// environment overrides file).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete configuration for an xrplgo client: which
// node to talk to and how aggressively to autofill transactions.
type Config struct {
	Network      NetworkConfig `mapstructure:"network"`
	MaxFeeDrops  uint64        `mapstructure:"max_fee_drops"`
	LedgerOffset uint32        `mapstructure:"ledger_offset"`
}

// NetworkConfig selects which rippled node(s) a client talks to.
type NetworkConfig struct {
	HTTPEndpoint string `mapstructure:"http_endpoint"`
	WSEndpoint   string `mapstructure:"ws_endpoint"`
}

// Well-known public rippled cluster endpoints, used as defaults when a
// named network preset is requested instead of an explicit endpoint.
var networkPresets = map[string]NetworkConfig{
	"mainnet": {HTTPEndpoint: "https://s1.ripple.com:51234/", WSEndpoint: "wss://s1.ripple.com/"},
	"testnet": {HTTPEndpoint: "https://s.altnet.rippletest.net:51234/", WSEndpoint: "wss://s.altnet.rippletest.net:51233/"},
	"devnet":  {HTTPEndpoint: "https://s.devnet.rippletest.net:51234/", WSEndpoint: "wss://s.devnet.rippletest.net:51233/"},
}

// NetworkPreset returns the well-known endpoints for a named network
// ("mainnet", "testnet", "devnet"), reporting false if name isn't one
// of them.
func NetworkPreset(name string) (NetworkConfig, bool) {
	preset, ok := networkPresets[strings.ToLower(name)]
	return preset, ok
}

// setDefaults mirrors rippled's layered config loader: defaults first,
// so a config file or environment variable only needs to mention what
// it's overriding.
func setDefaults(v *viper.Viper) {
	v.SetDefault("network.http_endpoint", networkPresets["mainnet"].HTTPEndpoint)
	v.SetDefault("network.ws_endpoint", networkPresets["mainnet"].WSEndpoint)
	v.SetDefault("max_fee_drops", 100)
	v.SetDefault("ledger_offset", 20)
}

// Load reads configuration from configPath (if non-empty and present),
// then XRPLGO_-prefixed environment variables, layered over defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("XRPLGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return &cfg, nil
}
