package pubindex

import "embed"

// EmbeddedAssets contains static assets shipped with pubindex:
// pubindex.css, the card and filter stylesheet.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
