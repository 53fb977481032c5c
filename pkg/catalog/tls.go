package catalog

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSOptions enable encrypted connections. Client certificates (mutual TLS)
// are optional and only supported by the clickhouse dialect; Oracle servers
// authenticate clients through wallets instead.
type TLSOptions struct {
	Enabled bool

	// CertFile and KeyFile hold a PEM client certificate and its key
	CertFile string
	KeyFile  string

	// CAFile holds PEM roots used to verify the server. The system pool is used
	// when empty.
	CAFile string

	InsecureSkipVerify bool
}

// HasClientCert reports whether a client certificate is configured.
func (o *TLSOptions) HasClientCert() bool {
	return o != nil && (o.CertFile != "" || o.KeyFile != "")
}

// Config builds a *tls.Config from the options. It returns nil when TLS is
// disabled.
//
// Example usage:
//
//	cfg, err := opts.TLS.Config()
//	if err != nil {
//		return err
//	}
func (o *TLSOptions) Config() (*tls.Config, error) {
	if o == nil || !o.Enabled {
		return nil, nil
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: o.InsecureSkipVerify, // nolint: gosec
	}

	if o.HasClientCert() {
		cert, err := tls.LoadX509KeyPair(o.CertFile, o.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load certfile/keyfile")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if o.CAFile != "" {
		caCert, err := os.ReadFile(o.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load cafile")
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.Errorf("no certificates found in %s", o.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
