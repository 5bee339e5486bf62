package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jwalitptl/clinic-tracker/internal/model"
)

//go:embed template.yaml
var templateYAML []byte

// Template is the master checklist as written in template.yaml.
type Template struct {
	Name        string       `yaml:"name"`
	Status      string       `yaml:"status"`
	Departments []Department `yaml:"departments"`
}

type Department struct {
	Name   string       `yaml:"name"`
	Phases []PhaseGroup `yaml:"phases"`
}

type PhaseGroup struct {
	Phase      string   `yaml:"phase"`
	OffsetDays int      `yaml:"offset_days"`
	Tasks      []string `yaml:"tasks"`
}

// LoadTemplate parses the embedded master checklist.
func LoadTemplate() (*Template, error) {
	return ParseTemplate(templateYAML)
}

// ParseTemplate decodes a checklist and checks every department and phase
// against the catalog.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("template has no name")
	}
	if t.Status == "" {
		t.Status = model.ClinicStatusTemplate
	}
	for _, d := range t.Departments {
		if !model.IsDepartment(d.Name) {
			return nil, fmt.Errorf("template department %q is not in the catalog", d.Name)
		}
		for _, p := range d.Phases {
			if !model.IsPhase(p.Phase) {
				return nil, fmt.Errorf("template phase %q in %s is not in the catalog", p.Phase, d.Name)
			}
		}
	}
	return &t, nil
}

// Tasks flattens the checklist into template task rows. Sort order restarts
// at zero for every department.
func (t *Template) Tasks() []*model.Task {
	var tasks []*model.Task
	for _, d := range t.Departments {
		order := 0
		for _, p := range d.Phases {
			for _, name := range p.Tasks {
				offset := p.OffsetDays
				tasks = append(tasks, &model.Task{
					Name:               name,
					Department:         d.Name,
					Phase:              p.Phase,
					Status:             model.StatusNotStarted,
					SortOrder:          order,
					IsTemplate:         true,
					TemplateOffsetDays: &offset,
				})
				order++
			}
		}
	}
	return tasks
}
