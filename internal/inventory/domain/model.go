package domain

import "time"

// DataFlow describes what travels between a project and a connected system.
type DataFlow struct {
	Sends    string `json:"sends" yaml:"sends"`
	Receives string `json:"receives" yaml:"receives"`
}

// Connection is a directed relationship between a project and another system.
// Connections only exist inside their owning Project.
type Connection struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	DataFlow    DataFlow `json:"dataFlow" yaml:"dataFlow"`
}

// Project is one tracked IT system.
// It is storage-agnostic and used across store, service and HTTP layers.
type Project struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Purpose         string          `json:"purpose"`
	DevelopmentType DevelopmentType `json:"developmentType"`
	Language        string          `json:"language"`
	DatabaseType    string          `json:"databaseType"`
	DiagramURL      string          `json:"diagramUrl,omitempty"`
	Connections     []Connection    `json:"connections"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Draft is a Project without identity and timestamps. It is the input of create and update.
type Draft struct {
	Name            string          `json:"name" yaml:"name"`
	Purpose         string          `json:"purpose" yaml:"purpose"`
	DevelopmentType DevelopmentType `json:"developmentType" yaml:"developmentType"`
	Language        string          `json:"language" yaml:"language"`
	DatabaseType    string          `json:"databaseType" yaml:"databaseType"`
	DiagramURL      string          `json:"diagramUrl,omitempty" yaml:"diagramUrl,omitempty"`
	Connections     []Connection    `json:"connections" yaml:"connections"`
}

// HasDiagram reports whether a diagram reference is set.
func (p Project) HasDiagram() bool {
	return p.DiagramURL != ""
}

// Draft returns the mutable part of the project, e.g. to prefill an edit form.
func (p Project) Draft() Draft {
	return Draft{
		Name:            p.Name,
		Purpose:         p.Purpose,
		DevelopmentType: p.DevelopmentType,
		Language:        p.Language,
		DatabaseType:    p.DatabaseType,
		DiagramURL:      p.DiagramURL,
		Connections:     cloneConnections(p.Connections),
	}
}

// Clone returns a deep copy so callers cannot alias the connection slice.
func (p Project) Clone() Project {
	p.Connections = cloneConnections(p.Connections)
	return p
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	d.Connections = cloneConnections(d.Connections)
	return d
}

func cloneConnections(in []Connection) []Connection {
	out := make([]Connection, len(in))
	copy(out, in)
	return out
}
