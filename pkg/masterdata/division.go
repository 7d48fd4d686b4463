package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

type Division struct {
	ID           kernel.RecordID `json:"id"`
	Division     string          `json:"division" validate:"notblank"`
	DivisionCode string          `json:"divisionCode" validate:"notblank"`
	BusinessUnit string          `json:"businessUnit" validate:"notblank"`
	kernel.Audit
}

func (d Division) GetID() kernel.RecordID { return d.ID }

func (d Division) WithID(id kernel.RecordID) Division {
	d.ID = id
	return d
}

func (d Division) WithAudit(a kernel.Audit) Division {
	d.Audit = a
	return d
}

func (d Division) Normalized() Division {
	d.Division = trim(d.Division)
	d.DivisionCode = trim(d.DivisionCode)
	d.BusinessUnit = trim(d.BusinessUnit)
	return d
}

func (d Division) Fields() filter.Record {
	return fieldsWithAudit(d.Audit, filter.Record{
		"id":           int64(d.ID),
		"division":     d.Division,
		"divisionCode": d.DivisionCode,
		"businessUnit": d.BusinessUnit,
	})
}

func DivisionAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityDivision).
		Search("division", "divisionCode", "businessUnit").
		DerivedEnum("businessUnit", "Business Unit").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "division", Header: "Division"},
			filter.Column{Field: "divisionCode", Header: "Division Code"},
			filter.Column{Field: "businessUnit", Header: "Business Unit"},
		)...)
}
