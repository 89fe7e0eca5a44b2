// Package pubindex serves the listing and search pages of a static blog.
// Every page load fetches the blog's published index.json once, runs the
// filter, sort and pagination pipeline over it, and renders article cards.
//
// It also derives an RSS feed and a sitemap from the same index.
package pubindex

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubindex/index"
	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/views"
)

// App is the central pubindex application. It wires together the index
// loader, handlers, middleware and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Loader page.Loader

	limiter      *LoadLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration. Routes and middleware
// are installed immediately so a.Echo can be used as an http.Handler.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: cfg.StaticDir,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Loader == nil {
		a.Loader = index.NewLoader(cfg.IndexURL, cfg.FetchTimeout)
	}
	if cfg.LoadLimit > 0 {
		a.limiter = NewLoadLimiter(cfg.LoadLimit, cfg.LoadWindow)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	if a.Config.IndexURL == "" {
		return fmt.Errorf("pubindex: IndexURL is required")
	}
	a.Echo.Logger.Infof("serving %s from index %s", a.Config.Addr, a.Config.IndexURL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases background resources.
func (a *App) Shutdown(ctx context.Context) error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET(views.StylesheetPath, echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	pages := e.Group("", a.limitLoads)
	pages.GET("/", a.handleHome)
	pages.GET(views.SearchPath, a.handleSearch)
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}
