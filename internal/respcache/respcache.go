// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package respcache is a small disk cache for collaborator responses.
// Entries are zstd-compressed and expire by file modification time.
package respcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Cache stores compressed response bodies keyed by an opaque request string.
type Cache struct {
	dir     string
	ttl     time.Duration
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// New creates a cache rooted at dir, creating it if needed. A non-positive
// ttl means entries never expire.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &Cache{dir: dir, ttl: ttl, encoder: encoder, decoder: decoder}, nil
}

// Get returns the cached body for key, if present and fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	path := c.path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	body, err := c.decoder.DecodeAll(compressed, nil)
	if err != nil {
		slog.Warn("discarding corrupt cache entry", "path", path, "error", err)

		return nil, false
	}

	return body, true
}

// Put stores the body under key. Failures are reported but a failed put never
// fails the request that produced the body.
func (c *Cache) Put(key string, body []byte) error {
	path := c.path(key)
	compressed := c.encoder.EncodeAll(body, nil)

	tmp, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return err
	}

	if _, err = tmp.Write(compressed); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return err
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (c *Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))

	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".zst")
}
