package export

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jwalitptl/clinic-tracker/internal/model"
	"github.com/jwalitptl/clinic-tracker/internal/repository"
)

const sheetName = "Checklist"

var header = []string{"Department", "Phase", "Task", "Due Date", "Status", "Assignees"}

var columnWidths = []float64{28, 26, 70, 12, 14, 36}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type Exporter interface {
	WriteChecklist(ctx context.Context, clinicID uuid.UUID, w io.Writer) (string, error)
}

type Service struct {
	clinics repository.ClinicRepository
	tasks   repository.TaskRepository
	users   repository.UserRepository
}

func NewService(clinics repository.ClinicRepository, tasks repository.TaskRepository, users repository.UserRepository) *Service {
	return &Service{clinics: clinics, tasks: tasks, users: users}
}

// WriteChecklist writes the clinic's task list as an xlsx workbook to w and
// returns a download file name for it.
func (s *Service) WriteChecklist(ctx context.Context, clinicID uuid.UUID, w io.Writer) (string, error) {
	clinic, err := s.clinics.Get(ctx, clinicID)
	if err != nil {
		return "", err
	}
	tasks, err := s.tasks.List(ctx, model.TaskFilter{ClinicID: clinicID})
	if err != nil {
		return "", err
	}
	model.SortTasks(tasks)

	users, err := s.users.List(ctx)
	if err != nil {
		return "", err
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	f, err := buildWorkbook(tasks, names)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return FileName(clinic), nil
}

// FileName builds "<clinic>-checklist.xlsx" with unsafe characters replaced.
func FileName(clinic *model.Clinic) string {
	base := strings.Trim(unsafeFileChars.ReplaceAllString(clinic.Name, "_"), "_")
	if base == "" {
		base = "clinic"
	}
	return base + "-checklist.xlsx"
}

func buildWorkbook(tasks []*model.Task, names map[uuid.UUID]string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	for i, t := range tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		values := []interface{}{t.Department, t.Phase, t.Name, t.DueDate.String(), t.Status, assigneeNames(t, names)}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func assigneeNames(t *model.Task, names map[uuid.UUID]string) string {
	out := make([]string, 0, len(t.AssigneeIDs))
	for _, id := range t.AssigneeIDs {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return strings.Join(out, ", ")
}
