// Package export compiles a store into a complete static site and
// packages it: every page, the stylesheet, the client script, decoded
// image assets, and a README. The build is all-or-nothing; a single
// undecodable asset fails the whole export rather than shipping a
// broken site.
package export

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/yassirfh/shopforge/internal/render"
	"github.com/yassirfh/shopforge/internal/store"
)

// File is one generated output, with a slash-separated archive path.
type File struct {
	Path string
	Data []byte
}

// Site is the full set of generated files, in a stable order: pages
// first, then assets, then images, then the README.
type Site struct {
	Files []File
}

// Summary describes a finished build for reporting and history.
type Summary struct {
	Pages  int
	Images int
	Files  int
	Bytes  int64
}

// Exporter builds static sites from a store. Now is injectable so
// generated copyright years are deterministic under test.
type Exporter struct {
	Store    *store.Store
	Currency string
	Now      func() time.Time

	// Progress, when set, is called once per generated file with its
	// archive path.
	Progress func(path string)
}

// NewExporter creates an Exporter with the given currency symbol.
func NewExporter(s *store.Store, currency string) *Exporter {
	return &Exporter{Store: s, Currency: currency, Now: time.Now}
}

func (e *Exporter) composer() *render.Composer {
	c := render.NewComposer(e.Store, e.Currency)
	if e.Now != nil {
		c.Now = e.Now
	}
	return c
}

func (e *Exporter) emit(site *Site, p string, data []byte) {
	site.Files = append(site.Files, File{Path: p, Data: data})
	if e.Progress != nil {
		e.Progress(p)
	}
}

// Build generates every file of the site in memory. The context is
// checked between files so a long build can be cancelled.
func (e *Exporter) Build(ctx context.Context) (*Site, Summary, error) {
	var sum Summary
	site := &Site{}
	c := e.composer()

	home, err := c.ComposeHome()
	if err != nil {
		return nil, sum, fmt.Errorf("composing home page: %w", err)
	}
	e.emit(site, "index.html", []byte(home))
	sum.Pages++

	listing, err := c.ComposeListing()
	if err != nil {
		return nil, sum, fmt.Errorf("composing product listing: %w", err)
	}
	e.emit(site, "products.html", []byte(listing))
	sum.Pages++

	for _, pg := range e.Store.PublishedPages() {
		if err := ctx.Err(); err != nil {
			return nil, sum, err
		}
		doc, err := c.ComposeCustomPage(pg)
		if err != nil {
			return nil, sum, err
		}
		e.emit(site, pg.Slug+".html", []byte(doc))
		sum.Pages++
	}

	e.emit(site, "css/style.css", []byte(render.GenerateCSS(e.Store)))
	e.emit(site, "js/main.js", []byte(render.GenerateClientScript()))

	images, err := imageFiles(e.Store)
	if err != nil {
		return nil, sum, err
	}
	for _, f := range images {
		if err := ctx.Err(); err != nil {
			return nil, sum, err
		}
		e.emit(site, f.Path, f.Data)
		sum.Images++
	}

	e.emit(site, "README.md", []byte(e.readme(sum)))

	sum.Files = len(site.Files)
	for _, f := range site.Files {
		sum.Bytes += int64(len(f.Data))
	}
	return site, sum, nil
}

// Zip writes the site as a zip archive. Paths inside the archive use
// forward slashes regardless of host OS.
func (s *Site) Zip(ctx context.Context, w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, f := range s.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		fw, err := zw.Create(path.Clean(f.Path))
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", f.Path, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", f.Path, err)
		}
	}
	return zw.Close()
}

// WriteDir materializes the site into a directory on disk. Used by the
// preview server, which serves files rather than an archive.
func (s *Site) WriteDir(dir string) error {
	for _, f := range s.Files {
		dst := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// Export runs a full build and streams the resulting archive to w.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (Summary, error) {
	site, sum, err := e.Build(ctx)
	if err != nil {
		return sum, err
	}
	if err := site.Zip(ctx, w); err != nil {
		return sum, err
	}
	return sum, nil
}
