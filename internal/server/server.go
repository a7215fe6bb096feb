// Package server runs the component preview server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-uikit"
	"github.com/goliatone/go-uikit/internal/logging"
	"github.com/goliatone/go-uikit/internal/metrics"
	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/showcase"
)

const (
	// ShowcaseComponent labels full showcase renders in metrics.
	ShowcaseComponent = "showcase"
	// UnknownComponent labels lookups of unregistered names in metrics.
	UnknownComponent = "unknown"

	shutdownTimeout = 5 * time.Second
	contentTypeHTML = "text/html; charset=utf-8"

	// AssetsPath serves the component scripts as static files.
	AssetsPath = "/assets/uikit"
)

// Options configures a Server.
type Options struct {
	Addr string
	// Components are served under /components; defaults to the showcase demos.
	Components *render.Registry
	// Pages renders the showcase document; defaults to page.New().
	Pages *page.Renderer
	// RenderOptions seed the render.Context created for every request.
	RenderOptions []render.Option
	Logger        *logging.Logger
	// Registry collects metrics; a private registry is created when nil.
	Registry *prometheus.Registry
}

// Server serves the showcase page, single component fragments, health and
// metrics.
type Server struct {
	components *render.Registry
	pages      *page.Renderer
	renderOpts []render.Option
	log        *logging.Logger
	metrics    *metrics.Metrics
	router     *gin.Engine
	http       *http.Server
}

// New wires the routes.
func New(opts Options) (*Server, error) {
	s := &Server{
		components: opts.Components,
		pages:      opts.Pages,
		renderOpts: opts.RenderOptions,
		log:        opts.Logger,
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	if s.components == nil {
		reg, err := showcase.NewRegistry()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.components = reg
	}
	if s.pages == nil {
		pages, err := page.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.pages = pages
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	s.metrics = metrics.New(registry)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(s.observeMiddleware())

	router.GET("/", s.showcase)
	router.HEAD("/", s.showcase)
	router.GET("/components", s.list)
	router.GET("/components/:name", s.component)
	router.StaticFS(AssetsPath, http.FS(uikit.RuntimeAssetsFS()))
	router.GET("/healthz", s.health)
	router.HEAD("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	s.router = router
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": s.http.Addr}).Info("starting preview server")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

func (s *Server) newContext(c *gin.Context, extra ...render.Option) *render.Context {
	opts := append([]render.Option(nil), s.renderOpts...)
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		opts = append(opts, render.WithLocale(lang))
	}
	return render.NewContext(append(opts, extra...)...)
}

func (s *Server) showcase(c *gin.Context) {
	start := time.Now()
	ctx := s.newContext(c, render.WithDeferredScripts())

	doc, err := showcase.Document(ctx, s.components)
	if err == nil {
		var html string
		html, err = s.pages.Render(ctx, doc)
		if err == nil {
			s.metrics.RecordRender(ShowcaseComponent, metrics.StatusOK, time.Since(start), len(html))
			c.Data(http.StatusOK, contentTypeHTML, []byte(html))
			return
		}
	}
	s.metrics.RecordRender(ShowcaseComponent, metrics.StatusError, time.Since(start), 0)
	s.log.Error(err, "render showcase")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
}

func (s *Server) component(c *gin.Context) {
	start := time.Now()
	name := c.Param("name")
	ctx := s.newContext(c)

	html, err := uikit.RenderComponent(ctx, s.components, name)
	switch {
	case errors.Is(err, render.ErrUnknownComponent):
		s.metrics.RecordRender(UnknownComponent, metrics.StatusNotFound, 0, 0)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown component %q", name)})
		return
	case err != nil:
		s.metrics.RecordRender(name, metrics.StatusError, time.Since(start), 0)
		s.log.WithFields(map[string]any{"component": name}).Error(err, "render component")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}

	s.metrics.RecordRender(name, metrics.StatusOK, time.Since(start), len(html))
	c.Data(http.StatusOK, contentTypeHTML, []byte(html))
}

type componentInfo struct {
	Name        string `json:"name"`
	Family      string `json:"family"`
	Description string `json:"description,omitempty"`
}

func (s *Server) list(c *gin.Context) {
	defs := s.components.Definitions()
	out := make([]componentInfo, 0, len(defs))
	for _, def := range defs {
		out = append(out, componentInfo{Name: def.Name, Family: def.Family, Description: def.Description})
	}
	c.JSON(http.StatusOK, gin.H{"components": out})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

func (s *Server) observeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		s.metrics.RecordRequest(c.FullPath(), status)
		s.log.Request(c.Request.Method, c.Request.URL.Path, status, time.Since(start))
	}
}
