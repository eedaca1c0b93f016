// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkialg

// Well-known algorithm identifiers shipped as static labels. Each value
// is the DER of the algorithm OID followed by its parameters encoding,
// without the outer SEQUENCE (see [AlgorithmIdentifier]).
var (
	// RSAEncryption identifies an RSA public key:
	// OID 1.2.840.113549.1.1.1 with NULL parameters.
	RSAEncryption = NewAlgorithmIdentifier([]byte{
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01,
		0x05, 0x00,
	})

	// RSAPKCS1SHA256 identifies the sha256WithRSAEncryption signature
	// algorithm: OID 1.2.840.113549.1.1.11 with NULL parameters.
	RSAPKCS1SHA256 = NewAlgorithmIdentifier([]byte{
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b,
		0x05, 0x00,
	})

	// RSAPKCS1SHA384 identifies the sha384WithRSAEncryption signature
	// algorithm: OID 1.2.840.113549.1.1.12 with NULL parameters.
	RSAPKCS1SHA384 = NewAlgorithmIdentifier([]byte{
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c,
		0x05, 0x00,
	})

	// RSAPKCS1SHA512 identifies the sha512WithRSAEncryption signature
	// algorithm: OID 1.2.840.113549.1.1.13 with NULL parameters.
	RSAPKCS1SHA512 = NewAlgorithmIdentifier([]byte{
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d,
		0x05, 0x00,
	})

	// ECDSAP256 identifies an EC public key on the P-256 curve:
	// OID 1.2.840.10045.2.1 with the named curve 1.2.840.10045.3.1.7
	// as parameters.
	ECDSAP256 = NewAlgorithmIdentifier([]byte{
		0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07,
	})

	// ECDSAP384 identifies an EC public key on the P-384 curve:
	// OID 1.2.840.10045.2.1 with the named curve 1.3.132.0.34 as
	// parameters.
	ECDSAP384 = NewAlgorithmIdentifier([]byte{
		0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
		0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x22,
	})

	// ECDSASHA256 identifies the ecdsa-with-SHA256 signature algorithm:
	// OID 1.2.840.10045.4.3.2 with absent parameters.
	ECDSASHA256 = NewAlgorithmIdentifier([]byte{
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02,
	})

	// ECDSASHA384 identifies the ecdsa-with-SHA384 signature algorithm:
	// OID 1.2.840.10045.4.3.3 with absent parameters.
	ECDSASHA384 = NewAlgorithmIdentifier([]byte{
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x03,
	})

	// Ed25519 identifies both the Ed25519 public key type and signature
	// algorithm: OID 1.3.101.112 with absent parameters.
	Ed25519 = NewAlgorithmIdentifier([]byte{
		0x06, 0x03, 0x2b, 0x65, 0x70,
	})
)
