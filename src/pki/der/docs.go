// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pkider provides the byte-level vocabulary shared by [X.509]
// consuming code: immutable DER-encoded artifacts such as certificates,
// revocation lists, private keys and trust anchors.
//
// Every type in this package wraps a [Der] container, which holds its
// content either as a borrowed view over caller-supplied memory or as an
// independently owned buffer. The two representations are interchangeable
// for every consumer; only the lifetime of the underlying memory differs.
//
// This package is a pure carrier. It never inspects the wrapped bytes and
// never validates DER well-formedness; producing well-formed spans is the
// job of the parser that feeds it (see the pemfile package for the [PEM]
// boundary).
//
// [X.509]: https://grokipedia.com/page/X.509
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package pkider
