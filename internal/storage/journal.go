package storage

import "github.com/vovakirdan/tui-editor/internal/console"

// Journal writes console entries of one editor session to a Store.
type Journal struct {
	store     *Store
	sessionID string
}

var _ console.Sink = (*Journal)(nil)

// NewJournal creates a journal sink for sessionID.
func NewJournal(store *Store, sessionID string) *Journal {
	return &Journal{store: store, sessionID: sessionID}
}

// SessionID returns the journaled session id.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Write implements console.Sink.
func (j *Journal) Write(e console.Entry) error {
	return j.store.AppendEntry(j.sessionID, e)
}
