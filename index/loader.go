package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eringen/pubindex/article"
)

const (
	defaultUserAgent = "pubindex/1.0 (+https://github.com/eringen/pubindex)"
	defaultTimeout   = 15 * time.Second
)

// Loader fetches index.json. Each call to Load issues exactly one request;
// failures are not retried.
type Loader struct {
	URL       string
	Client    *http.Client
	UserAgent string

	now func() time.Time
}

// NewLoader returns a Loader for the index at rawURL using a client with the
// given timeout (15s when zero).
func NewLoader(rawURL string, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Loader{
		URL:       rawURL,
		Client:    &http.Client{Timeout: timeout},
		UserAgent: defaultUserAgent,
	}
}

// Load fetches and decodes the index. Any failure is returned as a
// *DataLoadError.
func (l *Loader) Load(ctx context.Context) ([]article.Article, error) {
	target, err := l.requestURL()
	if err != nil {
		return nil, &DataLoadError{URL: l.URL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &DataLoadError{URL: l.URL, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if l.UserAgent != "" {
		req.Header.Set("User-Agent", l.UserAgent)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &DataLoadError{URL: l.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &DataLoadError{
			URL:    l.URL,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("HTTP %d", resp.StatusCode),
		}
	}

	var articles []article.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, &DataLoadError{URL: l.URL, Err: fmt.Errorf("decoding index: %w", err)}
	}
	return articles, nil
}

// requestURL appends the cache-busting v parameter so intermediaries never
// answer with a stale index.
func (l *Loader) requestURL() (string, error) {
	u, err := url.Parse(l.URL)
	if err != nil {
		return "", fmt.Errorf("parsing index url: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
	case "file":
		return "", ErrFileProtocol
	default:
		return "", fmt.Errorf("unsupported index url scheme %q", u.Scheme)
	}
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	q := u.Query()
	q.Set("v", strconv.FormatInt(now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
