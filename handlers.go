package pubindex

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/index"
	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
	"github.com/eringen/pubindex/views"
)

// session starts a page session for the request: one index fetch, then the
// state encoded in the URL is replayed as commands. A failed fetch is not an
// HTTP error; it becomes the view's error state.
func (a *App) session(c echo.Context, kind page.Kind) page.View {
	ctrl := page.New(kind, c.Logger())
	_ = ctrl.Load(c.Request().Context(), a.Loader)
	return ctrl.Dispatch(page.DecodeCommands(c.QueryParams())...)
}

func isPartial(c echo.Context, name string) bool {
	return c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == name
}

// handleHome serves the home page, with HTMX partial support.
func (a *App) handleHome(c echo.Context) error {
	v := a.session(c, page.Home)
	if isPartial(c, "results") {
		return Render(c, views.ArticleList(v))
	}
	return Render(c, views.HomePage(a.viewConfig(), v))
}

// handleSearch serves the search page, with HTMX partial support.
func (a *App) handleSearch(c echo.Context) error {
	v := a.session(c, page.Search)
	if isPartial(c, "results") {
		return Render(c, views.SearchResults(v))
	}
	return Render(c, views.SearchPage(a.viewConfig(), v))
}

func (a *App) handleFeed(c echo.Context) error {
	articles, err := a.loadArticles(c)
	if err != nil {
		return err
	}
	return a.renderRSS(c, articles)
}

func (a *App) handleSitemap(c echo.Context) error {
	articles, err := a.loadArticles(c)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, articles)
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// loadArticles fetches the index newest first for the feed and sitemap.
func (a *App) loadArticles(c echo.Context) ([]article.Article, error) {
	articles, err := a.Loader.Load(c.Request().Context())
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadGateway, "index unavailable").SetInternal(err)
	}
	return query.Sort(index.NewStore(articles).Articles(), query.SortDateDesc), nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
