package tui

import "github.com/eringen/pubindex/article"

type indexLoadedMsg struct {
	articles []article.Article
}

type indexErrMsg struct {
	err error
}
