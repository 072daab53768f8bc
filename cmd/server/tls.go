package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"google.golang.org/grpc/credentials"

	"github.com/AmmannChristian/pwstrength/internal/config"
)

// loadTLSCredentials builds gRPC transport credentials from the TLS_*
// settings. TLS_CA_FILE, when set, is the pool used to verify client
// certificates.
func loadTLSCredentials(cfg *config.Config) (credentials.TransportCredentials, error) {
	tlsCfg, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}
	return credentials.NewTLS(tlsCfg), nil
}

func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}

	clientAuth, err := cfg.TLSClientAuthType()
	if err != nil {
		return nil, err
	}
	minVersion, err := cfg.TLSMinVersionValue()
	if err != nil {
		return nil, err
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientAuth:   clientAuth,
		MinVersion:   minVersion,
	}

	if cfg.TLSCAFile != "" {
		pem, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.TLSCAFile)
		}
		tlsCfg.ClientCAs = pool
	}

	return tlsCfg, nil
}
