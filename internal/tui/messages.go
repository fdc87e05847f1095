package tui

import (
	"github.com/meufuturo/futuro/internal/model"
	"github.com/meufuturo/futuro/internal/session"
)

// sessionCommittedMsg is sent whenever the session applies an atomic
// state commit; the model re-reads the snapshot.
type sessionCommittedMsg struct{}

// categoriesLoadedMsg carries the category reference data.
type categoriesLoadedMsg struct {
	err        error
	categories []model.Category
}

// invalidationMsg wraps a refresh-bus event.
type invalidationMsg struct {
	event session.Invalidation
	ok    bool
}

// opResultMsg reports a finished CRUD operation.
type opResultMsg struct {
	result session.OpResult
	action string
}

// exportDoneMsg reports a finished report download.
type exportDoneMsg struct {
	err  error
	path string
}

// statusExpiredMsg clears the transient status line.
type statusExpiredMsg struct{}
