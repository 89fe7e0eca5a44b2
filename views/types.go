package views

// SiteConfig holds the site-wide settings templates need. The server copies
// it from pubindex.SiteConfig so nothing is hardcoded in markup.
type SiteConfig struct {
	Name        string // site name shown in titles and the header
	URL         string // canonical base URL
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
}
