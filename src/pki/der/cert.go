// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkider

// Certificate is a DER-encoded [X.509] certificate as specified in
// [RFC 5280]. Certificates are identified in PEM context as `CERTIFICATE`
// and usually stored with a `.pem`, `.cer` or `.crt` extension.
//
// [X.509]: https://grokipedia.com/page/X.509
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
type Certificate struct {
	der Der
}

// NewCertificate creates a borrowed Certificate view over der.
// The aliasing contract of [FromSlice] applies.
func NewCertificate(der []byte) Certificate {
	return Certificate{der: FromSlice(der)}
}

// NewCertificateOwned creates an owned Certificate, taking ownership of der.
func NewCertificateOwned(der []byte) Certificate {
	return Certificate{der: FromOwned(der)}
}

// Bytes returns the DER-encoded certificate.
func (c Certificate) Bytes() []byte { return c.der.Bytes() }

// ToOwned returns an owned duplicate with an independent buffer.
func (c Certificate) ToOwned() Certificate {
	return Certificate{der: c.der.ToOwned()}
}

// Equal reports whether both certificates hold identical encoded bytes.
func (c Certificate) Equal(other Certificate) bool {
	return c.der.Equal(other.der)
}

// RevocationList is a DER-encoded certificate revocation list as
// specified in [RFC 5280]. Revocation lists are identified in PEM context
// as `X509 CRL` and usually stored with a `.crl` extension.
//
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
type RevocationList struct {
	der Der
}

// NewRevocationList creates a borrowed RevocationList view over der.
// The aliasing contract of [FromSlice] applies.
func NewRevocationList(der []byte) RevocationList {
	return RevocationList{der: FromSlice(der)}
}

// NewRevocationListOwned creates an owned RevocationList, taking ownership of der.
func NewRevocationListOwned(der []byte) RevocationList {
	return RevocationList{der: FromOwned(der)}
}

// Bytes returns the DER-encoded revocation list.
func (r RevocationList) Bytes() []byte { return r.der.Bytes() }

// ToOwned returns an owned duplicate with an independent buffer.
func (r RevocationList) ToOwned() RevocationList {
	return RevocationList{der: r.der.ToOwned()}
}

// Equal reports whether both revocation lists hold identical encoded bytes.
func (r RevocationList) Equal(other RevocationList) bool {
	return r.der.Equal(other.der)
}
