package domain

import (
	"strings"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/utils"
)

// ConnectionDraft is the connection sub-form before it gets an ID.
type ConnectionDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Sends       string `json:"sends"`
	Receives    string `json:"receives"`
}

// AddConnection returns a copy of the draft with the connection appended.
// A blank name leaves the draft as it was. The receiver is never modified.
func (d Draft) AddConnection(c ConnectionDraft) Draft {
	out := d.Clone()
	if strings.TrimSpace(c.Name) == "" {
		return out
	}
	out.Connections = append(out.Connections, Connection{
		ID:          utils.NewID("conn"),
		Name:        c.Name,
		Description: c.Description,
		DataFlow: DataFlow{
			Sends:    c.Sends,
			Receives: c.Receives,
		},
	})
	return out
}

// RemoveConnection returns a copy of the draft without the given connection.
// Unknown IDs leave the draft as it was.
func (d Draft) RemoveConnection(connectionID string) Draft {
	out := d.Clone()
	kept := out.Connections[:0]
	for _, c := range out.Connections {
		if c.ID != connectionID {
			kept = append(kept, c)
		}
	}
	out.Connections = kept
	return out
}
