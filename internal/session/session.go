// Package session stamps each DSL evaluation with an activation ID, the
// way gastown's per-run GT_SESSION concept identifies a single agent
// activation (internal/config/env.go, see _teacher_keep/env.go.ref).
package session

import (
	"time"

	"github.com/google/uuid"
)

// Session carries identifying metadata for one DSL evaluation. It is
// exposed to the custom-template namespace under the "session" prefix
// (e.g. !{session.id}) and used as the title of the view command.
type Session struct {
	ID        string
	StartedAt time.Time
	Script    string
}

// New generates a fresh Session for script, stamped with a random v4
// UUID.
func New(script string) Session {
	return Session{
		ID:     uuid.New().String(),
		Script: script,
	}
}

// Started returns a copy of s with StartedAt set to now.
func (s Session) Started(now time.Time) Session {
	s.StartedAt = now
	return s
}

// GetAttr implements attrns.AttrGetter so a Session can be exposed
// directly as the "session" entry of an attribute namespace.
func (s Session) GetAttr(name string) (any, bool) {
	switch name {
	case "id":
		return s.ID, true
	case "script":
		return s.Script, true
	case "started_at":
		return s.StartedAt.Format(time.RFC3339), true
	default:
		return nil, false
	}
}
