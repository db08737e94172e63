package models

import "time"

// Department codes for the three production areas. The set is closed:
// a record never moves between departments after creation.
const (
	DepartmentAutomated = "AUTOMATIZZATO"
	DepartmentPanels    = "PANNELLI"
	DepartmentFinal     = "FINALE"
)

// Departments lists all valid department codes in display order.
var Departments = []string{DepartmentAutomated, DepartmentPanels, DepartmentFinal}

// IsValidDepartment checks whether dept is one of the known codes.
func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// Urgency levels for a missing part.
const (
	UrgencyLow    = "LOW"
	UrgencyMedium = "MEDIUM"
	UrgencyHigh   = "HIGH"
)

// Urgencies lists all urgency levels in ascending order of severity.
var Urgencies = []string{UrgencyLow, UrgencyMedium, UrgencyHigh}

// ImportUser is the created_by sentinel for records created by bulk import.
const ImportUser = "import"

// Record is a single missing-part entry. Together with the department,
// the (MSN, PNL, part number) triple forms the logical identity of a record.
type Record struct {
	// ID is an opaque UUID assigned at creation.
	ID string `json:"id" gorm:"column:id;primaryKey"`

	// MSN is the serial number of the affected unit.
	MSN string `json:"msn" gorm:"column:msn"`

	// PNL is the panel code.
	PNL string `json:"pnl" gorm:"column:pnl"`

	// PartNumber is the missing part's number.
	PartNumber string `json:"part_number" gorm:"column:part_number"`

	// Quantity is the number of missing pieces, at least 1.
	Quantity int `json:"quantity" gorm:"column:quantity"`

	// Urgency is one of LOW, MEDIUM, HIGH.
	Urgency string `json:"urgency" gorm:"column:urgency"`

	// Department is the department code that owns this record.
	Department string `json:"department" gorm:"column:department"`

	// ManufactureDate is an optional ISO date (YYYY-MM-DD). Nil means no date.
	ManufactureDate *string `json:"manufacture_date" gorm:"column:manufacture_date"`

	// Note is optional free text, uppercased on input.
	Note string `json:"note" gorm:"column:note"`

	// Type is an optional classification, uppercased on input.
	Type string `json:"type" gorm:"column:type"`

	// CreatedBy is the username that created the record, or ImportUser.
	CreatedBy string `json:"created_by" gorm:"column:created_by"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName maps Record to the inventory collection.
func (Record) TableName() string {
	return "inventory"
}
