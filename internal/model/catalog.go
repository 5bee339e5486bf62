package model

// Departments is the closed, ordered set of organizational departments.
var Departments = []string{
	"Strategic Growth",
	"Marketing",
	"IT",
	"Inventory",
	"Operations",
	"Accounting / Accounts Payable",
	"Credentialing",
	"RODs & Clinic Leads",
	"Malpractice",
	"Special Operations",
	"Referrals Outreach",
	"HR",
}

// Phase is a time-phase label with the offset the master template uses for it.
type Phase struct {
	Name          string `json:"name"`
	DefaultOffset int    `json:"default_offset_days"`
}

// Phases is ordered from earliest pre-opening work to post-opening follow-up.
var Phases = []Phase{
	{"Scouting", -150},
	{"After Lease Signed", -120},
	{"2 Months Before Opening", -60},
	{"1 Month Before Opening", -30},
	{"2 Weeks Before Opening", -14},
	{"1 Week Before Opening", -7},
	{"Week Before Opening", -5},
	{"Opening Day", 0},
	{"1 Week After Opening", 7},
	{"1 Month After Opening", 30},
	{"2 Months After Opening", 60},
	{"3 Months After Opening", 90},
	{"When New Provider Hired", 0},
}

// Task statuses. There are no transition constraints between them.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusComplete   = "Complete"
	StatusBlocked    = "Blocked"
)

var Statuses = []string{StatusNotStarted, StatusInProgress, StatusComplete, StatusBlocked}

// User roles
const (
	RoleAdmin      = "admin"
	RoleDeptHead   = "dept_head"
	RoleTeamMember = "team_member"
)

var Roles = []string{RoleAdmin, RoleDeptHead, RoleTeamMember}

// Catalog is the read-only view of the enumerations served to clients.
type Catalog struct {
	Departments []string `json:"departments"`
	Phases      []Phase  `json:"phases"`
	Statuses    []string `json:"statuses"`
	Roles       []string `json:"roles"`
}

func GetCatalog() Catalog {
	return Catalog{
		Departments: Departments,
		Phases:      Phases,
		Statuses:    Statuses,
		Roles:       Roles,
	}
}

func IsDepartment(s string) bool {
	return indexOf(Departments, s) >= 0
}

func IsStatus(s string) bool {
	return indexOf(Statuses, s) >= 0
}

func IsRole(s string) bool {
	return indexOf(Roles, s) >= 0
}

func IsPhase(s string) bool {
	return PhaseIndex(s) >= 0
}

// PhaseIndex returns the position of name in Phases, or -1.
func PhaseIndex(name string) int {
	for i, p := range Phases {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
