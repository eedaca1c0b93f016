// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package unixtime provides the validity-clock value type used when
// comparing "now" against certificate validity bounds. It exposes a
// plain count of seconds since the Unix epoch and nothing else; window
// comparison belongs to the relying-party validator.
package unixtime
