// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkider

// TrustAnchor is a minimal root-of-trust record: the essential elements
// of a root CA without the overhead of a full certificate. The three
// spans are produced by an X.509 structural parser; this type only
// carries them.
type TrustAnchor struct {
	// Subject is the DER-encoded `subject` field of the trust anchor.
	Subject Der

	// SubjectPublicKeyInfo is the DER-encoded `subjectPublicKeyInfo`
	// field of the trust anchor.
	SubjectPublicKeyInfo Der

	// NameConstraints is the DER-encoded `NameConstraints` value
	// restricting the trust anchor, if any.
	NameConstraints *Der
}

// ToOwned returns a TrustAnchor whose fields all carry owned buffers,
// detached from whatever transient parse buffer backed the original.
func (t TrustAnchor) ToOwned() TrustAnchor {
	anchor := TrustAnchor{
		Subject:              t.Subject.ToOwned(),
		SubjectPublicKeyInfo: t.SubjectPublicKeyInfo.ToOwned(),
	}
	if t.NameConstraints != nil {
		nc := t.NameConstraints.ToOwned()
		anchor.NameConstraints = &nc
	}
	return anchor
}

// Equal reports whether both trust anchors hold identical encoded bytes
// in every field. A nil NameConstraints only equals another nil.
func (t TrustAnchor) Equal(other TrustAnchor) bool {
	if !t.Subject.Equal(other.Subject) || !t.SubjectPublicKeyInfo.Equal(other.SubjectPublicKeyInfo) {
		return false
	}
	switch {
	case t.NameConstraints == nil && other.NameConstraints == nil:
		return true
	case t.NameConstraints == nil || other.NameConstraints == nil:
		return false
	default:
		return t.NameConstraints.Equal(*other.NameConstraints)
	}
}
