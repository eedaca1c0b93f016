// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/pki-types/src/internal/helper/gc"
)

func TestDefaultPoolRoundTrip(t *testing.T) {
	buf := gc.Default.Get()
	require.NotNil(t, buf, "Get() must return a buffer")

	n, err := buf.Write([]byte("-----BEGIN "))
	require.NoError(t, err, "Write() error")
	assert.Equal(t, 11, n, "Write() byte count mismatch")

	_, err = buf.WriteString("CERTIFICATE-----")
	require.NoError(t, err, "WriteString() error")
	require.NoError(t, buf.WriteByte('\n'), "WriteByte() error")

	assert.Equal(t, "-----BEGIN CERTIFICATE-----\n", buf.String(), "accumulated content mismatch")
	assert.Equal(t, 28, buf.Len(), "Len() mismatch")

	buf.Reset()
	assert.Zero(t, buf.Len(), "Reset() must empty the buffer")
	gc.Default.Put(buf)
}

func TestBufferReadFrom(t *testing.T) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	n, err := buf.ReadFrom(strings.NewReader("pem payload"))
	require.NoError(t, err, "ReadFrom() error")
	assert.Equal(t, int64(11), n, "ReadFrom() byte count mismatch")
	assert.Equal(t, []byte("pem payload"), buf.Bytes(), "ReadFrom() content mismatch")
}

func TestBufferWriteTo(t *testing.T) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.SetString("drained")

	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	require.NoError(t, err, "WriteTo() error")
	assert.Equal(t, int64(7), n, "WriteTo() byte count mismatch")
	assert.Equal(t, "drained", out.String(), "WriteTo() content mismatch")
}

func TestBufferSet(t *testing.T) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.SetString("stale content")
	buf.Set([]byte("fresh"))
	assert.Equal(t, "fresh", buf.String(), "Set() must replace the previous content")
}

func TestPoolConcurrentUse(t *testing.T) {
	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := gc.Default.Get()
				buf.SetString("x")
				assert.Equal(t, 1, buf.Len(), "pooled buffer content mismatch")
				buf.Reset()
				gc.Default.Put(buf)
			}
		}()
	}
	wg.Wait()
}
