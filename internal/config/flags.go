package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args and returns the
// positional arguments that follow them.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-refresh-token-secret refresh token signing secret
//	-access-token-duration access token lifetime (e.g. "15m")
//	-refresh-token-duration refresh token lifetime (e.g. "168h")
//	-token-issuer token issuer name
//	-bcrypt-cost bcrypt work factor
//	-request-timeout request timeout (e.g. "30s")
//	-auth-rate-limit auth requests per second per IP
//	-trust-proxy-headers take the client IP from X-Forwarded-For/X-Real-IP
//	-log-level log level
//	-retry-count client GET retries
//	-token-store client token store DSN
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("cinetrack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address NetAddress
	var jsonConfigPath string
	cfg := &StructuredConfig{}

	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.AccessTokenSecret, "access-token-secret", "", "Access token signing secret")
	fs.StringVar(&cfg.App.RefreshTokenSecret, "refresh-token-secret", "", "Refresh token signing secret")
	fs.DurationVar(&cfg.App.AccessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g. 15m)")
	fs.DurationVar(&cfg.App.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g. 168h)")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.Float64Var(&cfg.Server.AuthRateLimit, "auth-rate-limit", 0, "Auth requests per second per IP")
	fs.BoolVar(&cfg.Server.TrustProxyHeaders, "trust-proxy-headers", false, "Trust X-Forwarded-For and X-Real-IP")
	fs.IntVar(&cfg.Adapter.RetryCount, "retry-count", 0, "Client GET retries")
	fs.StringVar(&cfg.Client.TokenStoreDSN, "token-store", "", "Client token store DSN")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// -a names the listen address for the server and the target for the client.
	cfg.Server.HTTPAddress = address.String()
	cfg.Adapter.HTTPAddress = address.String()
	cfg.JSONFilePath = jsonConfigPath

	return cfg, fs.Args(), nil
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
// An empty host means all interfaces; any other host must be "localhost" or
// a valid IP address.
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

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
