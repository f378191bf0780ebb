// Package preview serves a freshly built site over HTTP and rebuilds it
// whenever the store file changes, pushing a reload signal to connected
// browsers over a WebSocket.
package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yassirfh/shopforge/internal/export"
	"github.com/yassirfh/shopforge/internal/store"
)

// Config holds preview server configuration.
type Config struct {
	Port      int
	StoreFile string // store JSON watched for changes
	Dir       string // directory the built site is written into
	Currency  string
}

// Server rebuilds and serves the site for local preview.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	reload     *reloadHub

	mu      sync.RWMutex
	builtAt time.Time
}

// New creates a preview server. Call Rebuild once before Start so the
// first request has something to serve.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg, reload: newReloadHub()}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/livereload", s.reload.handleWebSocket)
	r.Get("/*", s.serveFile)

	return r
}

// Rebuild loads the store, runs a full build, and writes it into the
// preview directory. Connected browsers are told to reload.
func (s *Server) Rebuild(ctx context.Context) error {
	st, err := store.Load(s.cfg.StoreFile)
	if err != nil {
		return err
	}
	e := export.NewExporter(st, s.cfg.Currency)
	site, _, err := e.Build(ctx)
	if err != nil {
		return fmt.Errorf("building preview: %w", err)
	}
	if err := site.WriteDir(s.cfg.Dir); err != nil {
		return fmt.Errorf("writing preview files: %w", err)
	}

	s.mu.Lock()
	s.builtAt = time.Now()
	s.mu.Unlock()

	s.reload.broadcast()
	return nil
}

// serveFile serves the built site. HTML responses get the livereload
// snippet appended; the exported archive itself is never modified.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, "/")
	if p == "" {
		p = "index.html"
	}
	p = filepath.Clean(p)
	if p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)) {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(s.cfg.Dir, filepath.FromSlash(p))
	data, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if strings.HasSuffix(p, ".html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data = injectReloadSnippet(data)
		w.Write(data)
		return
	}
	http.ServeFile(w, r, full)
}

// injectReloadSnippet adds the livereload client before </body>, or at
// the end when no closing tag is found.
func injectReloadSnippet(page []byte) []byte {
	html := string(page)
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return []byte(html[:i] + reloadSnippet + html[i:])
	}
	return []byte(html + reloadSnippet)
}

const reloadSnippet = `<script>
(function () {
  var ws = new WebSocket('ws://' + location.host + '/livereload');
  ws.onmessage = function () { location.reload(); };
  ws.onclose = function () { setTimeout(function () { location.reload(); }, 1000); };
})();
</script>
`

// Watch polls the store file and rebuilds when its mtime changes. It
// blocks until the context is cancelled.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	var last time.Time
	if fi, err := os.Stat(s.cfg.StoreFile); err == nil {
		last = fi.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fi, err := os.Stat(s.cfg.StoreFile)
			if err != nil {
				continue
			}
			if fi.ModTime().Equal(last) {
				continue
			}
			last = fi.ModTime()
			if err := s.Rebuild(ctx); err != nil {
				log.Printf("preview: rebuild: %v", err)
			} else {
				log.Printf("preview: rebuilt after change to %s", s.cfg.StoreFile)
			}
		}
	}
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("shopforge preview listening on http://localhost:%d", s.cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
