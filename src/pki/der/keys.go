// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkider

import (
	"fmt"
	"io"
)

// redactedKey is the fixed placeholder every private-key type prints
// instead of its bytes. Redaction is a confidentiality contract, not a
// display preference: key material must never reach logs or error text
// through formatting.
const redactedKey = "[secret key elided]"

// PrivateKey is a DER-encoded private key in one of exactly three
// encodings: PKCS#1 ([Pkcs1Key]), Sec1 ([Sec1Key]) or PKCS#8
// ([Pkcs8Key]).
//
// The set is closed: the interface is sealed by an unexported method, so
// a type switch over the three concrete kinds handles every possible
// value. Adding a fourth encoding is a deliberate breaking change.
//
// Formatting any PrivateKey through the fmt verbs yields a redacted
// placeholder, never the key bytes.
type PrivateKey interface {
	// SecretBytes yields the DER-encoded bytes of the private key,
	// whichever encoding is held.
	SecretBytes() []byte

	// String returns a redacted description of the key.
	String() string

	// privateKey seals the closed set of key encodings.
	privateKey()
}

// Pkcs1Key is a DER-encoded plaintext RSA private key as specified in
// PKCS#1 / [RFC 3447]. PKCS#1 keys are identified in PEM context as
// `RSA PRIVATE KEY`.
//
// [RFC 3447]: https://www.rfc-editor.org/rfc/rfc3447
type Pkcs1Key struct {
	der Der
}

// NewPkcs1Key creates a borrowed Pkcs1Key view over der.
// The aliasing contract of [FromSlice] applies.
func NewPkcs1Key(der []byte) Pkcs1Key {
	return Pkcs1Key{der: FromSlice(der)}
}

// NewPkcs1KeyOwned creates an owned Pkcs1Key, taking ownership of der.
func NewPkcs1KeyOwned(der []byte) Pkcs1Key {
	return Pkcs1Key{der: FromOwned(der)}
}

// SecretBytes yields the DER-encoded bytes of the private key.
func (k Pkcs1Key) SecretBytes() []byte { return k.der.Bytes() }

// ToOwned returns an owned duplicate with an independent buffer.
func (k Pkcs1Key) ToOwned() Pkcs1Key {
	return Pkcs1Key{der: k.der.ToOwned()}
}

// Equal reports whether both keys hold identical encoded bytes.
func (k Pkcs1Key) Equal(other Pkcs1Key) bool {
	return k.der.Equal(other.der)
}

// String returns a redacted description, never the key bytes.
func (k Pkcs1Key) String() string { return "Pkcs1Key(" + redactedKey + ")" }

// GoString returns a redacted description for the %#v verb.
func (k Pkcs1Key) GoString() string { return k.String() }

// Format implements [fmt.Formatter], routing every verb to the redacted
// description. Without it, verbs outside the Stringer set (`%d`, `%o`,
// `%b`, `%c`) would reflect into the wrapped bytes and print them.
func (k Pkcs1Key) Format(f fmt.State, verb rune) { io.WriteString(f, k.String()) }

func (Pkcs1Key) privateKey() {}

// Sec1Key is a DER-encoded plaintext EC private key as specified in
// [RFC 5915]. Sec1 keys are identified in PEM context as
// `EC PRIVATE KEY`.
//
// [RFC 5915]: https://www.rfc-editor.org/rfc/rfc5915
type Sec1Key struct {
	der Der
}

// NewSec1Key creates a borrowed Sec1Key view over der.
// The aliasing contract of [FromSlice] applies.
func NewSec1Key(der []byte) Sec1Key {
	return Sec1Key{der: FromSlice(der)}
}

// NewSec1KeyOwned creates an owned Sec1Key, taking ownership of der.
func NewSec1KeyOwned(der []byte) Sec1Key {
	return Sec1Key{der: FromOwned(der)}
}

// SecretBytes yields the DER-encoded bytes of the private key.
func (k Sec1Key) SecretBytes() []byte { return k.der.Bytes() }

// ToOwned returns an owned duplicate with an independent buffer.
func (k Sec1Key) ToOwned() Sec1Key {
	return Sec1Key{der: k.der.ToOwned()}
}

// Equal reports whether both keys hold identical encoded bytes.
func (k Sec1Key) Equal(other Sec1Key) bool {
	return k.der.Equal(other.der)
}

// String returns a redacted description, never the key bytes.
func (k Sec1Key) String() string { return "Sec1Key(" + redactedKey + ")" }

// GoString returns a redacted description for the %#v verb.
func (k Sec1Key) GoString() string { return k.String() }

// Format implements [fmt.Formatter], routing every verb to the redacted
// description. See [Pkcs1Key.Format].
func (k Sec1Key) Format(f fmt.State, verb rune) { io.WriteString(f, k.String()) }

func (Sec1Key) privateKey() {}

// Pkcs8Key is a DER-encoded plaintext private key as specified in
// PKCS#8 / [RFC 5958]. PKCS#8 keys are identified in PEM context as
// `PRIVATE KEY`.
//
// [RFC 5958]: https://www.rfc-editor.org/rfc/rfc5958
type Pkcs8Key struct {
	der Der
}

// NewPkcs8Key creates a borrowed Pkcs8Key view over der.
// The aliasing contract of [FromSlice] applies.
func NewPkcs8Key(der []byte) Pkcs8Key {
	return Pkcs8Key{der: FromSlice(der)}
}

// NewPkcs8KeyOwned creates an owned Pkcs8Key, taking ownership of der.
func NewPkcs8KeyOwned(der []byte) Pkcs8Key {
	return Pkcs8Key{der: FromOwned(der)}
}

// SecretBytes yields the DER-encoded bytes of the private key.
func (k Pkcs8Key) SecretBytes() []byte { return k.der.Bytes() }

// ToOwned returns an owned duplicate with an independent buffer.
func (k Pkcs8Key) ToOwned() Pkcs8Key {
	return Pkcs8Key{der: k.der.ToOwned()}
}

// Equal reports whether both keys hold identical encoded bytes.
func (k Pkcs8Key) Equal(other Pkcs8Key) bool {
	return k.der.Equal(other.der)
}

// String returns a redacted description, never the key bytes.
func (k Pkcs8Key) String() string { return "Pkcs8Key(" + redactedKey + ")" }

// GoString returns a redacted description for the %#v verb.
func (k Pkcs8Key) GoString() string { return k.String() }

// Format implements [fmt.Formatter], routing every verb to the redacted
// description. See [Pkcs1Key.Format].
func (k Pkcs8Key) Format(f fmt.State, verb rune) { io.WriteString(f, k.String()) }

func (Pkcs8Key) privateKey() {}
