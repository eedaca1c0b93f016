// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkialg

import "errors"

var (
	// ErrInvalidSignature indicates that a signature did not validate
	// against the message and public key, or that the supplied key or
	// signature bytes were malformed. The two causes are deliberately
	// indistinguishable so that callers cannot branch on format validity
	// and turn the verifier into an oracle.
	ErrInvalidSignature = errors.New("pkialg: invalid signature")

	// ErrUnsupportedAlgorithm indicates that no registered implementation
	// matches a declared identifier pair. It is a selection failure, not
	// a verification failure, and is never returned by VerifySignature.
	ErrUnsupportedAlgorithm = errors.New("pkialg: unsupported algorithm")
)

// SignatureVerificationAlgorithm is the capability contract an algorithm
// provider implements for one pair of public-key algorithm and signature
// algorithm. Both identifiers include their parameters encoding, so each
// distinct parameters value needs its own implementation.
//
// Implementations must be safe for concurrent use by multiple goroutines
// without external synchronization; relying parties verify many
// independent certificates in parallel.
type SignatureVerificationAlgorithm interface {
	// PublicKeyAlgID returns the AlgorithmIdentifier that a subject
	// public key's `subjectPublicKeyInfo` must declare for this
	// implementation to be used.
	PublicKeyAlgID() AlgorithmIdentifier

	// SignatureAlgID returns the AlgorithmIdentifier that the signed
	// structure's `signatureAlgorithm` must declare for this
	// implementation to be used.
	SignatureAlgID() AlgorithmIdentifier

	// VerifySignature verifies signature over message with publicKey.
	//
	// publicKey is the untrusted `subjectPublicKey` value from a
	// SubjectPublicKeyInfo encoding. message is the exact bytes that were
	// signed, unhashed; implementations do their own hashing where the
	// algorithm requires it.
	//
	// It returns nil only if signature is valid over message, and
	// [ErrInvalidSignature] otherwise, including when publicKey or
	// signature is malformed. No finer-grained error exists.
	VerifySignature(publicKey, message, signature []byte) error
}
