package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// BusinessUnit names its organization and location by string
type BusinessUnit struct {
	ID           kernel.RecordID `json:"id"`
	BusinessUnit string          `json:"businessUnit" validate:"notblank"`
	Organization string          `json:"organization" validate:"notblank"`
	Location     string          `json:"location" validate:"notblank"`
	kernel.Audit
}

func (b BusinessUnit) GetID() kernel.RecordID { return b.ID }

func (b BusinessUnit) WithID(id kernel.RecordID) BusinessUnit {
	b.ID = id
	return b
}

func (b BusinessUnit) WithAudit(a kernel.Audit) BusinessUnit {
	b.Audit = a
	return b
}

func (b BusinessUnit) Normalized() BusinessUnit {
	b.BusinessUnit = trim(b.BusinessUnit)
	b.Organization = trim(b.Organization)
	b.Location = trim(b.Location)
	return b
}

func (b BusinessUnit) Fields() filter.Record {
	return fieldsWithAudit(b.Audit, filter.Record{
		"id":           int64(b.ID),
		"businessUnit": b.BusinessUnit,
		"organization": b.Organization,
		"location":     b.Location,
	})
}

func BusinessUnitAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityBusinessUnit).
		Search("businessUnit", "organization", "location").
		DerivedEnum("organization", "Organization").
		DerivedEnum("location", "Location").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "businessUnit", Header: "Business Unit"},
			filter.Column{Field: "organization", Header: "Organization"},
			filter.Column{Field: "location", Header: "Location"},
		)...)
}
