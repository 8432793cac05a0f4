package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "8h", "30m")
//	-session-idle-timeout idle session timeout, 0 disables it
//	-store-timeout single store round-trip limit
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-lookup-url title lookup service base URL
//	-lookup-timeout title lookup timeout
//	-redis redis address for the title cache
//	-server-url sign-out server base URL (terminals)
//	-terminal terminal name (terminals)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionIdleTimeout time.Duration
	var storeTimeout time.Duration
	var requestTimeout time.Duration
	var lookupURL string
	var lookupTimeout time.Duration
	var redisAddress string
	var serverURL string
	var terminalName string

	fs := flag.NewFlagSet("go-signout", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 8h, 30m)")
	fs.DurationVar(&sessionIdleTimeout, "session-idle-timeout", 0, "Idle session timeout (0 disables)")
	fs.DurationVar(&storeTimeout, "store-timeout", 0, "Store round-trip timeout")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&lookupURL, "lookup-url", "", "Title lookup service base URL")
	fs.DurationVar(&lookupTimeout, "lookup-timeout", 0, "Title lookup timeout")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for the title cache")
	fs.StringVar(&serverURL, "server-url", "", "Sign-out server base URL")
	fs.StringVar(&terminalName, "terminal", "", "Terminal name")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			SessionIdleTimeout: sessionIdleTimeout,
			StoreTimeout:       storeTimeout,
			TerminalName:       terminalName,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Cache: Cache{
			RedisAddress: redisAddress,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			TitleLookupURL: lookupURL,
			LookupTimeout:  lookupTimeout,
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
