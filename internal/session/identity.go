package session

import (
	"time"

	"github.com/rickgorman/claude-persistent/pkg/hash"
)

// ID is an opaque token labelling one launch for one project.
type ID string

func (id ID) String() string { return string(id) }

// Generator produces session IDs. Now defaults to time.Now.
type Generator struct {
	Now func() time.Time
}

// NewGenerator returns a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

// Generate returns a new ID for a canonical project path.
func (g *Generator) Generate(projectPath string) ID {
	now := time.Now
	if g != nil && g.Now != nil {
		now = g.Now
	}
	return ID(hash.SessionID(projectPath, now()))
}
