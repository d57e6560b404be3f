package ui

import (
	"github.com/abelbrown/skim/internal/store"
	"github.com/abelbrown/skim/internal/track"
)

// ArticlesUpdatedMsg is sent by the coordinator when a fetch cycle
// lands. The UI responds by reloading from the store.
type ArticlesUpdatedMsg struct {
	New int
}

// articlesLoadedMsg carries a fresh article list from the store.
type articlesLoadedMsg struct {
	articles []store.Article
}

// nudgeMsg carries the latest drift decision after a mark-read.
type nudgeMsg struct {
	nudge track.Nudge
}

// errMsg carries a background error for the status line.
type errMsg struct {
	err error
}
