// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging
// operations. It defines the Logger interface and provides two
// implementations: StdLogger for human-readable line output and
// JSONLogger for structured JSON logging, plus a no-op default for
// library consumers. JSONLogger is thread-safe.
package logger
