// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/tdewolff/minify/v2"
)

//go:embed static
var staticFS embed.FS

type asset struct {
	body        []byte
	gz          []byte
	contentType string
	hash        string
}

// Assets serves the embedded CSS and JS under /static/
type Assets struct {
	files map[string]*asset
	prod  bool
}

// LoadAssets reads every embedded static file once.
// In prod CSS and JS are minified and pre-compressed.
func LoadAssets(prod bool, m *minify.M) (*Assets, error) {
	a := &Assets{files: make(map[string]*asset), prod: prod}

	err := fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		body, err := staticFS.ReadFile(p)
		if err != nil {
			return err
		}

		ext := path.Ext(p)
		contentType := mime.TypeByExtension(ext)
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if prod {
			switch ext {
			case ".css":
				body, err = m.Bytes("text/css", body)
			case ".js":
				body, err = m.Bytes("application/javascript", body)
			}
			if err != nil {
				return fmt.Errorf("failed to minify %s: %w", p, err)
			}
		}

		sum := md5.Sum(body)
		f := &asset{
			body:        body,
			contentType: contentType,
			hash:        hex.EncodeToString(sum[:])[:6],
		}

		if prod {
			var buf bytes.Buffer
			gz := gzip.NewWriter(&buf)
			if _, err := gz.Write(body); err != nil {
				return err
			}
			if err := gz.Close(); err != nil {
				return err
			}
			f.gz = buf.Bytes()
		}

		a.files[strings.TrimPrefix(p, "static/")] = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	return a, nil
}

// URL adds a content hash to a /static/ path so browsers refetch changed files.
// Unknown paths are returned unchanged.
func (a *Assets) URL(p string) string {
	name := strings.TrimPrefix(p, "/static/")
	f, ok := a.files[name]
	if !ok {
		return p
	}
	return "/static/" + name + "?v=" + f.hash
}

func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/static/")
	f, ok := a.files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", f.contentType)
	if a.prod {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	if f.gz != nil && strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Vary", "Accept-Encoding")
		w.Write(f.gz)
		return
	}

	http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(f.body))
}
