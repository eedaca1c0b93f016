// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemfile maps [PEM] blocks to the typed wrappers of the pkider
// package. Each supported PEM label corresponds 1:1 to a wrapper
// constructor: `CERTIFICATE`, `X509 CRL`, `RSA PRIVATE KEY`,
// `EC PRIVATE KEY` and `PRIVATE KEY`. Degenerate certs-only [PKCS7]
// bundles are handled through Cloudflare's cfssl library.
//
// The parser strips the PEM armor and hands the payload bytes over
// untouched; it never validates that the payload is well-formed DER.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
// [PKCS7]: https://grokipedia.com/page/PKCS_7
package pemfile
