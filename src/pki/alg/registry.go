// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pkialg

import "sync"

// Registry holds the set of [SignatureVerificationAlgorithm]
// implementations a relying party supports. Providers are registered at
// startup; lookups match a certificate's declared identifiers byte-exact
// against each implementation's identifier pair.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu   sync.RWMutex
	algs []SignatureVerificationAlgorithm
}

// NewRegistry creates a Registry populated with algs, preserving order.
func NewRegistry(algs ...SignatureVerificationAlgorithm) *Registry {
	r := &Registry{}
	r.Register(algs...)
	return r
}

// Register appends implementations to the registry.
func (r *Registry) Register(algs ...SignatureVerificationAlgorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.algs = append(r.algs, algs...)
}

// Find selects the implementation whose identifier pair matches
// publicKeyAlg and signatureAlg byte-exact. When several implementations
// match, the first registered wins; use [Registry.FindAll] to apply a
// different policy. It returns [ErrUnsupportedAlgorithm] when nothing
// matches, which is a distinct condition from an invalid signature.
func (r *Registry) Find(publicKeyAlg, signatureAlg AlgorithmIdentifier) (SignatureVerificationAlgorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, alg := range r.algs {
		if alg.PublicKeyAlgID().Equal(publicKeyAlg) && alg.SignatureAlgID().Equal(signatureAlg) {
			return alg, nil
		}
	}
	return nil, ErrUnsupportedAlgorithm
}

// FindAll returns every implementation matching the identifier pair, in
// registration order. Selecting among multiple matches is caller policy.
func (r *Registry) FindAll(publicKeyAlg, signatureAlg AlgorithmIdentifier) []SignatureVerificationAlgorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []SignatureVerificationAlgorithm
	for _, alg := range r.algs {
		if alg.PublicKeyAlgID().Equal(publicKeyAlg) && alg.SignatureAlgID().Equal(signatureAlg) {
			matches = append(matches, alg)
		}
	}
	return matches
}

// Supports reports whether at least one registered implementation
// matches the identifier pair.
func (r *Registry) Supports(publicKeyAlg, signatureAlg AlgorithmIdentifier) bool {
	_, err := r.Find(publicKeyAlg, signatureAlg)
	return err == nil
}
