package http

import (
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/diagram"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/service"
)

// Handler bundles the dependencies for inventory HTTP endpoints.
type Handler struct {
	projects *service.ProjectService
	diagrams *diagram.Intake
}

func New(projects *service.ProjectService, diagrams *diagram.Intake) *Handler {
	return &Handler{projects: projects, diagrams: diagrams}
}
