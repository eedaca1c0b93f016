// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pkialg defines algorithm identity and the signature
// verification contract for [X.509] consuming code.
//
// [AlgorithmIdentifier] is a known-good label: the DER encoding of a PKIX
// AlgorithmIdentifier (OID plus parameters) that the program ships as a
// constant, never parsed from untrusted input. Well-known identifiers
// such as [RSAEncryption] and [RSAPKCS1SHA256] are provided.
//
// [SignatureVerificationAlgorithm] is the capability contract that
// external algorithm providers implement, one per supported pair of
// public-key algorithm and signature algorithm. This package ships no
// cryptographic implementations itself; [Registry] lets a relying party
// collect implementations at startup and select the one matching a
// certificate's declared identifiers.
//
// [X.509]: https://grokipedia.com/page/X.509
package pkialg
