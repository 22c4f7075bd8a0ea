package domain

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/utils"
)

// Normalize trims the free-text fields of a draft and gives every connection
// without an ID a fresh one. The development type is left untouched so unlisted
// values are stored exactly as submitted.
func (d Draft) Normalize() Draft {
	d = d.Clone()
	d.Name = strings.TrimSpace(d.Name)
	d.Purpose = strings.TrimSpace(d.Purpose)
	d.Language = strings.TrimSpace(d.Language)
	d.DatabaseType = strings.TrimSpace(d.DatabaseType)
	d.DiagramURL = strings.TrimSpace(d.DiagramURL)
	for i := range d.Connections {
		c := &d.Connections[i]
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		if c.ID == "" {
			c.ID = utils.NewID("conn")
		}
	}
	return d
}

// Validate enforces the form-boundary rules: the five text fields are required and
// every connection needs a name and an ID unique within the draft.
// The store itself never rejects a draft.
func (d Draft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Purpose) == "" {
		missing = append(missing, "purpose")
	}
	if strings.TrimSpace(d.DevelopmentType.String()) == "" {
		missing = append(missing, "developmentType")
	}
	if strings.TrimSpace(d.Language) == "" {
		missing = append(missing, "language")
	}
	if strings.TrimSpace(d.DatabaseType) == "" {
		missing = append(missing, "databaseType")
	}
	seen := make(map[string]bool, len(d.Connections))
	for i, c := range d.Connections {
		if strings.TrimSpace(c.Name) == "" {
			missing = append(missing, fmt.Sprintf("connections[%d].name", i))
		}
		id := strings.TrimSpace(c.ID)
		if id == "" || seen[id] {
			missing = append(missing, fmt.Sprintf("connections[%d].id", i))
		}
		seen[id] = true
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
