package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses configuration flags from args (typically os.Args[1:]).
//
// Flags:
//
//	-api-url Ello API base URL
//	-api-prefix versioned path of browse endpoints
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-debug-http log request and response bodies
//	-client-id OAuth client id
//	-client-secret OAuth client secret
//	-d database DSN (SQLite path or postgres:// URL)
//	-refresh-interval token refresh interval (e.g., "5m")
//	-category-ttl category cache TTL (e.g., "10m")
//	-max-concurrency intents dispatched in parallel per screen
//	-log-file client log file path
//	-a development server address in format [host]:[port]
//	-page-size development server page size
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("ello-go", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress   NetAddress
		apiURL          string
		apiPrefix       string
		requestTimeout  time.Duration
		debugHTTP       bool
		clientID        string
		clientSecret    string
		databaseDSN     string
		refreshInterval time.Duration
		categoryTTL     time.Duration
		maxConcurrency  int
		logFile         string
		pageSize        int
		jsonConfigPath  string
	)

	fs.StringVar(&apiURL, "api-url", "", "Ello API base URL")
	fs.StringVar(&apiPrefix, "api-prefix", "", "Versioned API path prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&debugHTTP, "debug-http", false, "Log HTTP request and response bodies")
	fs.StringVar(&clientID, "client-id", "", "OAuth client id")
	fs.StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Token refresh interval (e.g., 5m)")
	fs.DurationVar(&categoryTTL, "category-ttl", 0, "Category cache TTL (e.g., 10m)")
	fs.IntVar(&maxConcurrency, "max-concurrency", 0, "Intents dispatched in parallel per screen")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&pageSize, "page-size", 0, "Development server page size")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        apiURL,
			Prefix:         apiPrefix,
			RequestTimeout: requestTimeout,
			Debug:          debugHTTP,
		},
		Auth: Auth{
			ClientID:        clientID,
			ClientSecret:    clientSecret,
			RefreshInterval: refreshInterval,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		App: App{
			CategoryCacheTTL: categoryTTL,
			MaxConcurrency:   maxConcurrency,
			LogFile:          logFile,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			PageSize:    pageSize,
		},
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
