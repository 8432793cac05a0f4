package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-signout"
	defaultTokenDuration  = 8 * time.Hour
	defaultStoreTimeout   = 10 * time.Second
	defaultLookupTimeout  = 10 * time.Second
	defaultRequestTimeout = 30 * time.Second
	defaultTitleTTL       = 24 * time.Hour
	defaultSweepInterval  = time.Minute
	defaultDSN            = "memory"
	defaultServerURL      = "http://localhost:8080"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges collected configs in order. mergo.WithOverride lets a later
// source replace non-zero values of an earlier one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			StoreTimeout:  defaultStoreTimeout,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Cache:   Cache{TitleTTL: defaultTitleTTL},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			LookupTimeout:  defaultLookupTimeout,
			ServerURL:      defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{SessionSweepInterval: defaultSweepInterval},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
