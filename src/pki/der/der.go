// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkider

import (
	"bytes"
	"encoding/hex"
)

// Der holds DER-encoded bytes, either borrowed or owned.
//
// A borrowed Der (see [FromSlice]) is a zero-copy view over memory that
// belongs to the caller. The view stays valid only as long as the caller
// keeps that memory alive and unmodified; Go cannot enforce this, so the
// aliasing contract is part of the constructor documentation.
//
// An owned Der (see [FromOwned] and [Der.ToOwned]) carries its own buffer
// and has no lifetime constraint.
//
// Content is immutable after construction and equality is defined on
// bytes only, never on the representation. The zero value is an empty
// borrowed view.
type Der struct {
	data  []byte
	owned bool
}

// FromSlice creates a borrowed Der view over der without copying.
//
// The caller must keep der alive and unmodified for as long as the
// returned value (or any wrapper built from it) is in use. Use
// [Der.ToOwned] to lift the view out of a transient buffer.
func FromSlice(der []byte) Der {
	return Der{data: der}
}

// FromOwned creates an owned Der, taking ownership of der.
//
// The caller must not modify der after the call.
func FromOwned(der []byte) Der {
	return Der{data: der, owned: true}
}

// Bytes returns the DER content regardless of representation.
//
// The returned slice is read-only; modifying it breaks the immutability
// contract of every wrapper sharing the buffer.
func (d Der) Bytes() []byte { return d.data }

// ToOwned returns an owned duplicate of the container with an
// independent buffer, detached from whatever memory backed the original.
func (d Der) ToOwned() Der {
	return Der{data: bytes.Clone(d.data), owned: true}
}

// Equal reports whether both containers hold identical bytes.
// Borrowed and owned representations with the same content compare equal.
func (d Der) Equal(other Der) bool {
	return bytes.Equal(d.data, other.data)
}

// String returns the hex-encoded content. Der payloads are not treated
// as secret; private-key wrappers apply their own redaction instead of
// relying on this method.
func (d Der) String() string {
	return "Der(" + hex.EncodeToString(d.data) + ")"
}
