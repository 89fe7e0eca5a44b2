package pubindex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/page"
)

type stubLoader struct {
	articles []article.Article
	err      error
	calls    int
}

func (s *stubLoader) Load(context.Context) ([]article.Article, error) {
	s.calls++
	return s.articles, s.err
}

func sampleArticles(n int) []article.Article {
	out := make([]article.Article, n)
	for i := range out {
		out[i] = article.Article{
			Title:       fmt.Sprintf("Post %02d", i),
			Description: fmt.Sprintf("Description %02d", i),
			URL:         fmt.Sprintf("/posts/%02d/", i),
			Date:        fmt.Sprintf("2024-01-%02d", i+1),
			Type:        article.Archetypes[i%len(article.Archetypes)],
			Tags:        []string{"go"},
		}
	}
	return out
}

func newTestApp(t *testing.T, l page.Loader, cfg SiteConfig) *App {
	t.Helper()
	cfg.URL = "https://example.com"
	a := New(cfg, WithLoader(l))
	t.Cleanup(func() {
		if a.limiter != nil {
			a.limiter.Stop()
		}
	})
	return a
}

func get(a *App, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeShowsTopPicks(t *testing.T) {
	l := &stubLoader{articles: sampleArticles(6)}
	a := newTestApp(t, l, SiteConfig{Name: "Tech Blog"})

	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="article-card"`); got != 3 {
		t.Errorf("cards = %d, want 3", got)
	}
	if l.calls != 1 {
		t.Errorf("loader calls = %d, want 1 per page load", l.calls)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}
}

func TestHomeSearchReturnsAllMatches(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: sampleArticles(8)}, SiteConfig{})
	body := get(a, "/?q=post").Body.String()
	if got := strings.Count(body, `class="article-card"`); got != 8 {
		t.Errorf("cards = %d, want 8", got)
	}
	if strings.Index(body, "Post 00") > strings.Index(body, "Post 07") {
		t.Error("home search should keep index order")
	}
}

func TestSearchPaginatesAndFilters(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: sampleArticles(12)}, SiteConfig{})

	body := get(a, "/search/").Body.String()
	if got := strings.Count(body, `class="article-card"`); got != 5 {
		t.Errorf("cards = %d, want 5", got)
	}
	if !strings.Contains(body, "Load more (7 remaining)") {
		t.Error("missing load more label")
	}

	body = get(a, "/search/?more=2").Body.String()
	if got := strings.Count(body, `class="article-card"`); got != 12 {
		t.Errorf("cards after two load more = %d, want 12", got)
	}
	if strings.Contains(body, "load-more-btn") {
		t.Error("load more shown with nothing remaining")
	}

	body = get(a, "/search/?type=Explainer&sort=date-asc").Body.String()
	if !strings.Contains(body, "3 of 12 articles") {
		t.Error("missing filtered results header")
	}
	if strings.Index(body, "Post 01") > strings.Index(body, "Post 11") {
		t.Error("date-asc should list older posts first")
	}
}

func TestSearchPartial(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: sampleArticles(3)}, SiteConfig{})
	rec := get(a, "/search/?partial=results&q=post", "HX-Request", "true")
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("partial response should not include the layout")
	}
	if !strings.HasPrefix(body, `<section id="search-results">`) {
		t.Errorf("partial body = %s", body)
	}
}

func TestSearchLoadFailureRendersMessage(t *testing.T) {
	a := newTestApp(t, &stubLoader{err: errors.New("connection refused")}, SiteConfig{})
	rec := get(a, "/search/?q=go")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<p class="error">`+page.MsgLoadFailed+`</p>`) {
		t.Errorf("missing load error message: %s", rec.Body.String())
	}
}

func TestEmptyIndexMessages(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: []article.Article{}}, SiteConfig{})
	for _, target := range []string{"/", "/?q=x", "/search/", "/search/?q=x"} {
		if body := get(a, target).Body.String(); !strings.Contains(body, page.MsgEmpty) {
			t.Errorf("%s: missing empty message", target)
		}
	}
}

func TestSearchRedirectsToTrailingSlash(t *testing.T) {
	a := newTestApp(t, &stubLoader{}, SiteConfig{})
	rec := get(a, "/search")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/search/" {
		t.Errorf("Location = %q, want /search/", loc)
	}
}

func TestPageLoadsAreRateLimited(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: sampleArticles(1)}, SiteConfig{LoadLimit: 2})
	for i := 0; i < 2; i++ {
		if rec := get(a, "/"); rec.Code != http.StatusOK {
			t.Fatalf("load %d: status = %d", i, rec.Code)
		}
	}
	if rec := get(a, "/search/"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
}

func TestNotFoundPage(t *testing.T) {
	a := newTestApp(t, &stubLoader{}, SiteConfig{Name: "Tech Blog"})
	rec := get(a, "/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Error("expected rendered 404 page")
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t, &stubLoader{}, SiteConfig{})
	body := get(a, "/robots.txt").Body.String()
	if !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("robots.txt = %q", body)
	}
}

func TestStylesheetServed(t *testing.T) {
	a := newTestApp(t, &stubLoader{}, SiteConfig{})
	rec := get(a, "/public/pubindex.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".article-card") {
		t.Error("stylesheet missing card rules")
	}
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t, &stubLoader{articles: sampleArticles(2)}, SiteConfig{})
	body := get(a, "/sitemap.xml").Body.String()
	for _, want := range []string{
		"<loc>https://example.com</loc>",
		"<loc>https://example.com/search/</loc>",
		"<loc>https://example.com/posts/01/</loc>",
		"<lastmod>2024-01-02</lastmod>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
}

func TestFeedUnavailable(t *testing.T) {
	a := newTestApp(t, &stubLoader{err: errors.New("down")}, SiteConfig{})
	if rec := get(a, "/feed.xml"); rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
