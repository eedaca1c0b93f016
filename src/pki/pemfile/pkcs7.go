// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemfile

import (
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	pkider "github.com/H0llyW00dzZ/pki-types/src/pki/der"
)

var (
	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("pemfile: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS7 indicates that no certificates were found
	// in the PKCS7 data.
	ErrNoCertificatesInPKCS7 = errors.New("pemfile: no certificates found in PKCS7 data")
)

const pkcs7BlockType = "PKCS7"

// Pkcs7Certificates extracts the certificates of a degenerate certs-only
// PKCS7 bundle, accepting either raw DER or a PEM `PKCS7` block. The
// extracted certificates are re-wrapped as owned [pkider.Certificate]
// values carrying their original DER encoding.
func (p *Parser) Pkcs7Certificates(data []byte) ([]pkider.Certificate, error) {
	if block, _ := pem.Decode(data); block != nil && block.Type == pkcs7BlockType {
		data = block.Bytes
	}

	parsed, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(parsed.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS7
	}

	certs := make([]pkider.Certificate, 0, len(parsed.Content.SignedData.Certificates))
	for _, cert := range parsed.Content.SignedData.Certificates {
		certs = append(certs, pkider.NewCertificateOwned(cert.Raw))
	}
	return certs, nil
}
