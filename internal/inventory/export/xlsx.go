package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

const (
	ProjectsSheet    = "Projects"
	ConnectionsSheet = "Connections"
	ContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	projectHeader    = []interface{}{"ID", "Name", "Purpose", "Type", "Language", "Database", "Diagram", "Connections", "Created", "Updated"}
	connectionHeader = []interface{}{"Project", "Name", "Description", "Sends", "Receives"}
)

// Build lays the projects out in a workbook with one sheet for projects and one for connections.
// The caller closes the returned file.
func Build(projects []domain.Project) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ProjectsSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(ConnectionsSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(ProjectsSheet, "A1", &projectHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(ConnectionsSheet, "A1", &connectionHeader); err != nil {
		f.Close()
		return nil, err
	}

	connRow := 2
	for i, p := range projects {
		diagram := "no"
		if p.HasDiagram() {
			diagram = "yes"
		}
		row := []interface{}{
			p.ID,
			p.Name,
			p.Purpose,
			p.DevelopmentType.String(),
			p.Language,
			p.DatabaseType,
			diagram,
			len(p.Connections),
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(ProjectsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			f.Close()
			return nil, err
		}

		for _, c := range p.Connections {
			crow := []interface{}{p.Name, c.Name, c.Description, c.DataFlow.Sends, c.DataFlow.Receives}
			if err := f.SetSheetRow(ConnectionsSheet, fmt.Sprintf("A%d", connRow), &crow); err != nil {
				f.Close()
				return nil, err
			}
			connRow++
		}
	}
	return f, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, projects []domain.Project) error {
	f, err := Build(projects)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
