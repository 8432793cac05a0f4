package config

import (
	"os"
	"time"
)

// ClientConfig is the configuration of a sign-out terminal (kiosk).
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// ClientApp holds terminal-level settings.
type ClientApp struct {
	TerminalName string
	Version      string
}

// ClientAdapter holds the connection settings to the sign-out server.
type ClientAdapter struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// GetClientConfig loads the shared configuration sources and narrows them
// down to the settings a terminal needs.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TerminalName: cfg.App.TerminalName,
			Version:      cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.App.TerminalName == "" {
		if host, hostErr := os.Hostname(); hostErr == nil {
			clientCfg.App.TerminalName = host
		}
	}

	return clientCfg, clientCfg.validate()
}
