package model

import (
	"math"

	"github.com/google/uuid"
)

const (
	ClinicStatusActive   = "Active"
	ClinicStatusTemplate = "Template"
)

type Clinic struct {
	Base
	Name        string     `db:"name" json:"name"`
	OpeningDate Date       `db:"opening_date" json:"opening_date"`
	Status      string     `db:"status" json:"status"`
	CreatedBy   *uuid.UUID `db:"created_by" json:"created_by"`
	IsTemplate  bool       `db:"is_template" json:"is_template"`
}

type CreateClinicRequest struct {
	Name        string `json:"name"`
	OpeningDate Date   `json:"opening_date"`
}

// Progress counts task completion for a clinic or a department.
type Progress struct {
	Total   int `db:"total" json:"total"`
	Done    int `db:"done" json:"done"`
	Blocked int `db:"blocked" json:"blocked"`
	Overdue int `db:"overdue" json:"overdue"`
	Pct     int `db:"-" json:"pct"`
}

// Fill computes Pct from Done and Total.
func (p *Progress) Fill() {
	p.Pct = Percent(p.Done, p.Total)
}

// Percent rounds done/total to the nearest whole percent. Zero total is 0%.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

type ClinicSummary struct {
	Clinic
	Progress
}

type DepartmentProgress struct {
	Department string `db:"department" json:"department"`
	Progress
}

// Dashboard is the per-clinic overview.
type Dashboard struct {
	Clinic      *Clinic              `json:"clinic"`
	Pct         int                  `json:"pct"`
	Departments []DepartmentProgress `json:"departments"`
	Overdue     []*Task              `json:"overdue"`
	Blocked     []*Task              `json:"blocked"`
	Activity    []*ActivityEntry     `json:"activity"`
}
