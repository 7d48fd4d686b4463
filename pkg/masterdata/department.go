package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

type Department struct {
	ID           kernel.RecordID `json:"id"`
	Department   string          `json:"department" validate:"notblank"`
	Code         string          `json:"code" validate:"notblank"`
	Division     string          `json:"division" validate:"notblank"`
	BusinessUnit string          `json:"businessUnit" validate:"notblank"`
	kernel.Audit
}

func (d Department) GetID() kernel.RecordID { return d.ID }

func (d Department) WithID(id kernel.RecordID) Department {
	d.ID = id
	return d
}

func (d Department) WithAudit(a kernel.Audit) Department {
	d.Audit = a
	return d
}

func (d Department) Normalized() Department {
	d.Department = trim(d.Department)
	d.Code = trim(d.Code)
	d.Division = trim(d.Division)
	d.BusinessUnit = trim(d.BusinessUnit)
	return d
}

func (d Department) Fields() filter.Record {
	return fieldsWithAudit(d.Audit, filter.Record{
		"id":           int64(d.ID),
		"department":   d.Department,
		"code":         d.Code,
		"division":     d.Division,
		"businessUnit": d.BusinessUnit,
	})
}

func DepartmentAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityDepartment).
		Search("department", "code", "division", "businessUnit").
		DerivedEnum("division", "Division").
		DerivedEnum("businessUnit", "Business Unit").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "department", Header: "Department"},
			filter.Column{Field: "code", Header: "Code"},
			filter.Column{Field: "division", Header: "Division"},
			filter.Column{Field: "businessUnit", Header: "Business Unit"},
		)...)
}
