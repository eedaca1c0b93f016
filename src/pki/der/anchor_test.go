// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkider_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkider "github.com/H0llyW00dzZ/pki-types/src/pki/der"
)

var (
	anchorSubject = []byte{0x30, 0x10, 0x31, 0x0e}
	anchorSPKI    = []byte{0x30, 0x22, 0x30, 0x0d}
	anchorNC      = []byte{0x30, 0x06, 0xa0, 0x04}
)

func borrowedAnchor(subject, spki, nc []byte) pkider.TrustAnchor {
	anchor := pkider.TrustAnchor{
		Subject:              pkider.FromSlice(subject),
		SubjectPublicKeyInfo: pkider.FromSlice(spki),
	}
	if nc != nil {
		der := pkider.FromSlice(nc)
		anchor.NameConstraints = &der
	}
	return anchor
}

func TestTrustAnchorToOwnedLiftsAllFields(t *testing.T) {
	// Simulate a transient parse buffer the anchor must be lifted out of.
	subject := bytes.Clone(anchorSubject)
	spki := bytes.Clone(anchorSPKI)
	nc := bytes.Clone(anchorNC)

	borrowed := borrowedAnchor(subject, spki, nc)
	owned := borrowed.ToOwned()

	subject[0] ^= 0xff
	spki[0] ^= 0xff
	nc[0] ^= 0xff

	assert.Equal(t, anchorSubject, owned.Subject.Bytes(), "owned subject must survive source mutation")
	assert.Equal(t, anchorSPKI, owned.SubjectPublicKeyInfo.Bytes(), "owned SPKI must survive source mutation")
	require.NotNil(t, owned.NameConstraints, "optional name constraints must be lifted too")
	assert.Equal(t, anchorNC, owned.NameConstraints.Bytes(), "owned name constraints must survive source mutation")
}

func TestTrustAnchorToOwnedWithoutNameConstraints(t *testing.T) {
	owned := borrowedAnchor(anchorSubject, anchorSPKI, nil).ToOwned()
	assert.Nil(t, owned.NameConstraints, "absent name constraints must stay absent")
}

func TestTrustAnchorEqual(t *testing.T) {
	tests := []struct {
		name  string
		left  pkider.TrustAnchor
		right pkider.TrustAnchor
		equal bool
	}{
		{
			name:  "Identical With Name Constraints",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, anchorNC),
			right: borrowedAnchor(anchorSubject, anchorSPKI, anchorNC),
			equal: true,
		},
		{
			name:  "Borrowed vs Owned",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, anchorNC),
			right: borrowedAnchor(anchorSubject, anchorSPKI, anchorNC).ToOwned(),
			equal: true,
		},
		{
			name:  "Identical Without Name Constraints",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, nil),
			right: borrowedAnchor(anchorSubject, anchorSPKI, nil),
			equal: true,
		},
		{
			name:  "Name Constraints Presence Differs",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, anchorNC),
			right: borrowedAnchor(anchorSubject, anchorSPKI, nil),
			equal: false,
		},
		{
			name:  "Subject Differs",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, nil),
			right: borrowedAnchor(anchorSPKI, anchorSPKI, nil),
			equal: false,
		},
		{
			name:  "Name Constraints Differ",
			left:  borrowedAnchor(anchorSubject, anchorSPKI, anchorNC),
			right: borrowedAnchor(anchorSubject, anchorSPKI, anchorSubject),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.left.Equal(tt.right), "Equal() result incorrect")
			assert.Equal(t, tt.equal, tt.right.Equal(tt.left), "Equal() must be symmetric")
		})
	}
}
