// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemfile

import (
	"encoding/pem"
	"errors"
	"io"

	"github.com/H0llyW00dzZ/pki-types/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/pki-types/src/logger"
	pkider "github.com/H0llyW00dzZ/pki-types/src/pki/der"
)

var (
	// ErrNoPEMData indicates that the provided data contains no PEM block
	// of the requested kind.
	ErrNoPEMData = errors.New("pemfile: no matching PEM block found")

	// ErrNoPrivateKey indicates that no private key block was found in
	// the provided data.
	ErrNoPrivateKey = errors.New("pemfile: no private key block found")
)

// PEM labels mapped 1:1 to wrapper constructors.
const (
	certificateBlockType = "CERTIFICATE"
	crlBlockType         = "X509 CRL"
	pkcs1BlockType       = "RSA PRIVATE KEY"
	sec1BlockType        = "EC PRIVATE KEY"
	pkcs8BlockType       = "PRIVATE KEY"
)

// Parser decodes PEM input into the typed wrappers of the pkider
// package. It maintains internal configuration such as the diagnostic
// logger used when blocks are skipped.
//
// All wrappers produced by a Parser are owned: pem decoding already
// allocates fresh payload buffers, so no borrowed view ever escapes.
type Parser struct {
	log logger.Logger
}

// New creates a new Parser with diagnostics discarded.
func New() *Parser {
	return &Parser{log: logger.Nop()}
}

// NewWithLogger creates a new Parser that reports skipped PEM blocks to l.
func NewWithLogger(l logger.Logger) *Parser {
	if l == nil {
		l = logger.Nop()
	}
	return &Parser{log: l}
}

// Certificates decodes every `CERTIFICATE` block from data.
// Blocks with other labels are skipped. It returns [ErrNoPEMData] when
// no certificate block is present.
func (p *Parser) Certificates(data []byte) ([]pkider.Certificate, error) {
	var certs []pkider.Certificate

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		if block.Type != certificateBlockType {
			p.log.Printf("pemfile: skipping %q block while reading certificates", block.Type)
			continue
		}
		certs = append(certs, pkider.NewCertificateOwned(block.Bytes))
	}

	if len(certs) == 0 {
		return nil, ErrNoPEMData
	}
	return certs, nil
}

// RevocationLists decodes every `X509 CRL` block from data.
// Blocks with other labels are skipped. It returns [ErrNoPEMData] when
// no revocation list block is present.
func (p *Parser) RevocationLists(data []byte) ([]pkider.RevocationList, error) {
	var crls []pkider.RevocationList

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		if block.Type != crlBlockType {
			p.log.Printf("pemfile: skipping %q block while reading revocation lists", block.Type)
			continue
		}
		crls = append(crls, pkider.NewRevocationListOwned(block.Bytes))
	}

	if len(crls) == 0 {
		return nil, ErrNoPEMData
	}
	return crls, nil
}

// PrivateKey decodes the first private key block from data, selecting
// the wrapper kind from the PEM label: `RSA PRIVATE KEY` yields a
// [pkider.Pkcs1Key], `EC PRIVATE KEY` a [pkider.Sec1Key] and
// `PRIVATE KEY` a [pkider.Pkcs8Key]. Blocks with other labels are
// skipped. It returns [ErrNoPrivateKey] when no key block is present.
func (p *Parser) PrivateKey(data []byte) (pkider.PrivateKey, error) {
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		switch block.Type {
		case pkcs1BlockType:
			return pkider.NewPkcs1KeyOwned(block.Bytes), nil
		case sec1BlockType:
			return pkider.NewSec1KeyOwned(block.Bytes), nil
		case pkcs8BlockType:
			return pkider.NewPkcs8KeyOwned(block.Bytes), nil
		default:
			p.log.Printf("pemfile: skipping %q block while reading private key", block.Type)
		}
	}

	return nil, ErrNoPrivateKey
}

// ReadCertificates reads all of r through a pooled buffer and decodes
// every `CERTIFICATE` block, as [Parser.Certificates] does.
func (p *Parser) ReadCertificates(r io.Reader) ([]pkider.Certificate, error) {
	data, err := p.read(r)
	if err != nil {
		return nil, err
	}
	return p.Certificates(data)
}

// ReadRevocationLists reads all of r through a pooled buffer and decodes
// every `X509 CRL` block, as [Parser.RevocationLists] does.
func (p *Parser) ReadRevocationLists(r io.Reader) ([]pkider.RevocationList, error) {
	data, err := p.read(r)
	if err != nil {
		return nil, err
	}
	return p.RevocationLists(data)
}

// ReadPrivateKey reads all of r through a pooled buffer and decodes the
// first private key block, as [Parser.PrivateKey] does.
func (p *Parser) ReadPrivateKey(r io.Reader) (pkider.PrivateKey, error) {
	data, err := p.read(r)
	if err != nil {
		return nil, err
	}
	return p.PrivateKey(data)
}

// read slurps r into a pooled buffer and copies the contents out before
// the buffer returns to the pool.
func (p *Parser) read(r io.Reader) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return append([]byte(nil), buf.Bytes()...), nil
}
