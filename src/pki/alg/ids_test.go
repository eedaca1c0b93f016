// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkialg_test

import (
	encasn1 "encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	pkialg "github.com/H0llyW00dzZ/pki-types/src/pki/alg"
)

// TestWellKnownIdentifierEncodings decodes every shipped identifier as
// an algorithm OID followed by its parameters, confirming the static
// constants carry the DER shape the selection protocol matches on.
func TestWellKnownIdentifierEncodings(t *testing.T) {
	tests := []struct {
		name      string
		id        pkialg.AlgorithmIdentifier
		wantOID   string
		params    string // "null", "oid" or "absent"
		paramsOID string
	}{
		{
			name:    "RSA Encryption",
			id:      pkialg.RSAEncryption,
			wantOID: "1.2.840.113549.1.1.1",
			params:  "null",
		},
		{
			name:    "RSA PKCS1 SHA256",
			id:      pkialg.RSAPKCS1SHA256,
			wantOID: "1.2.840.113549.1.1.11",
			params:  "null",
		},
		{
			name:    "RSA PKCS1 SHA384",
			id:      pkialg.RSAPKCS1SHA384,
			wantOID: "1.2.840.113549.1.1.12",
			params:  "null",
		},
		{
			name:    "RSA PKCS1 SHA512",
			id:      pkialg.RSAPKCS1SHA512,
			wantOID: "1.2.840.113549.1.1.13",
			params:  "null",
		},
		{
			name:      "ECDSA P256 Public Key",
			id:        pkialg.ECDSAP256,
			wantOID:   "1.2.840.10045.2.1",
			params:    "oid",
			paramsOID: "1.2.840.10045.3.1.7",
		},
		{
			name:      "ECDSA P384 Public Key",
			id:        pkialg.ECDSAP384,
			wantOID:   "1.2.840.10045.2.1",
			params:    "oid",
			paramsOID: "1.3.132.0.34",
		},
		{
			name:    "ECDSA With SHA256",
			id:      pkialg.ECDSASHA256,
			wantOID: "1.2.840.10045.4.3.2",
			params:  "absent",
		},
		{
			name:    "ECDSA With SHA384",
			id:      pkialg.ECDSASHA384,
			wantOID: "1.2.840.10045.4.3.3",
			params:  "absent",
		},
		{
			name:    "Ed25519",
			id:      pkialg.Ed25519,
			wantOID: "1.3.101.112",
			params:  "absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := cryptobyte.String(tt.id.Bytes())

			var oid encasn1.ObjectIdentifier
			require.True(t, input.ReadASN1ObjectIdentifier(&oid), "algorithm OID must decode")
			assert.Equal(t, tt.wantOID, oid.String(), "algorithm OID mismatch")

			switch tt.params {
			case "null":
				var null cryptobyte.String
				require.True(t, input.ReadASN1(&null, cbasn1.NULL), "parameters must be an ASN.1 NULL")
				assert.Empty(t, []byte(null), "NULL parameters carry no content")
			case "oid":
				var params encasn1.ObjectIdentifier
				require.True(t, input.ReadASN1ObjectIdentifier(&params), "curve parameters OID must decode")
				assert.Equal(t, tt.paramsOID, params.String(), "curve parameters OID mismatch")
			case "absent":
				// Nothing follows the algorithm OID.
			}

			assert.Empty(t, []byte(input), "identifier must contain nothing beyond OID and parameters")
		})
	}
}
