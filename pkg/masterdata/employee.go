package masterdata

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

type Employee struct {
	ID         kernel.RecordID `json:"id"`
	Name       string          `json:"name" validate:"notblank"`
	EmployeeID string          `json:"employeeId" validate:"notblank"`
	Role       string          `json:"role" validate:"notblank"`
	Email      string          `json:"email" validate:"required,email"`
	IsActive   bool            `json:"isActive"`
	kernel.Audit
}

func (e Employee) GetID() kernel.RecordID { return e.ID }

func (e Employee) WithID(id kernel.RecordID) Employee {
	e.ID = id
	return e
}

func (e Employee) WithAudit(a kernel.Audit) Employee {
	e.Audit = a
	return e
}

func (e Employee) Normalized() Employee {
	e.Name = trim(e.Name)
	e.EmployeeID = trim(e.EmployeeID)
	e.Role = trim(e.Role)
	e.Email = trim(e.Email)
	return e
}

// Toggled flips the active flag
func (e Employee) Toggled() Employee {
	e.IsActive = !e.IsActive
	return e
}

// HasRole compares role names case-insensitively
func (e Employee) HasRole(role string) bool {
	return strings.EqualFold(e.Role, strings.TrimSpace(role))
}

func (e Employee) Status() string {
	if e.IsActive {
		return "Active"
	}
	return "Inactive"
}

func (e Employee) Fields() filter.Record {
	return fieldsWithAudit(e.Audit, filter.Record{
		"id":         int64(e.ID),
		"name":       e.Name,
		"employeeId": e.EmployeeID,
		"role":       e.Role,
		"email":      e.Email,
		"isActive":   e.IsActive,
		"status":     e.Status(),
	})
}

func EmployeeAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityEmployee).
		Search("name", "employeeId", "email", "role").
		DerivedEnum("role", "Role").
		Bool("isActive", "Active").
		Enum("status", "Status", "Active", "Inactive").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "name", Header: "Name"},
			filter.Column{Field: "employeeId", Header: "Employee ID"},
			filter.Column{Field: "role", Header: "Role"},
			filter.Column{Field: "email", Header: "Email"},
			filter.Column{Field: "status", Header: "Status"},
		)...)
}
