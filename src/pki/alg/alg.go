// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkialg

import (
	"bytes"
	"encoding/hex"
)

// AlgorithmIdentifier is the DER encoding of the PKIX AlgorithmIdentifier
// type from [RFC 5280] section 4.1.1.2:
//
//	AlgorithmIdentifier  ::=  SEQUENCE  {
//	    algorithm               OBJECT IDENTIFIER,
//	    parameters              ANY DEFINED BY algorithm OPTIONAL  }
//
// The outer SEQUENCE encoding is not included, so the content is the DER
// of the algorithm OID followed by the parameters value. For example,
// [RSAEncryption] is the OID 1.2.840.113549.1.1.1 followed by a NULL.
//
// An AlgorithmIdentifier is a label the program ships with, constructed
// from static byte data only. It is never built from untrusted runtime
// input and its content is not secret.
//
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
type AlgorithmIdentifier struct {
	der []byte
}

// NewAlgorithmIdentifier wraps the DER bytes of an algorithm OID plus
// parameters. The content is not validated; callers pass compile-time
// constants representing algorithms they support.
func NewAlgorithmIdentifier(der []byte) AlgorithmIdentifier {
	return AlgorithmIdentifier{der: der}
}

// Bytes returns the DER content. The returned slice is read-only.
func (a AlgorithmIdentifier) Bytes() []byte { return a.der }

// Equal reports whether both identifiers hold byte-exact identical
// encodings. Identifier matching in the selection protocol is always
// byte-exact; there is no semantic OID comparison.
func (a AlgorithmIdentifier) Equal(other AlgorithmIdentifier) bool {
	return bytes.Equal(a.der, other.der)
}

// String returns the hex-encoded content. Identifiers are labels, not
// secrets, so no redaction applies.
func (a AlgorithmIdentifier) String() string {
	return "AlgorithmIdentifier(" + hex.EncodeToString(a.der) + ")"
}
