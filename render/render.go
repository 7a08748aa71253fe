// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/danielhkuo/simple-poll/cliparse"
	"github.com/danielhkuo/simple-poll/models"
)

// Page names
const (
	PageVote   = "vote"
	PageManage = "manage"
)

//go:embed templates/*.html
var templateFS embed.FS

// Raw HTML in the question is escaped (WithUnsafe is not set)
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// PageData is what every page template receives
type PageData struct {
	Page       string
	Poll       models.Poll
	MapsAPIKey string
}

type Renderer struct {
	pages  map[string]*template.Template
	min    *minify.M
	minify bool
	assets *Assets
}

// New parses the embedded templates and loads the static assets.
// In prod pages and assets are minified.
func New(env string) (*Renderer, error) {
	m := newMinifier()
	prod := env == cliparse.EnvProd

	assets, err := LoadAssets(prod, m)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		pages:  make(map[string]*template.Template),
		min:    m,
		minify: prod,
		assets: assets,
	}

	for _, page := range []string{PageVote, PageManage} {
		tmpl, err := template.New(page).
			Funcs(r.funcs()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Assets returns the static file set used by the pages
func (r *Renderer) Assets() *Assets {
	return r.assets
}

// Render executes a page into w. Nothing is written if execution fails.
func (r *Renderer) Render(w http.ResponseWriter, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	data.Page = page

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	out := buf.Bytes()
	if r.minify {
		if minified, err := r.min.Bytes("text/html", out); err == nil {
			out = minified
		} else {
			slog.Warn("failed to minify page", "page", page, "error", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(out)
	return err
}

func (r *Renderer) funcs() template.FuncMap {
	funcs := sprig.FuncMap()

	funcs["asset"] = r.assets.URL
	funcs["comma"] = func(n int) string {
		return humanize.Comma(int64(n))
	}
	funcs["percent"] = func(p models.Poll, i int) string {
		return fmt.Sprintf("%.1f", p.Percent(i))
	}
	funcs["markdown"] = func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	}

	return funcs
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), minjs.Minify)
	return m
}
