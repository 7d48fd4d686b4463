package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// Organization is the top of the admin hierarchy
type Organization struct {
	ID           kernel.RecordID `json:"id"`
	Organization string          `json:"organization" validate:"notblank"`
	Code         string          `json:"code" validate:"notblank"`
	kernel.Audit
}

func (o Organization) GetID() kernel.RecordID { return o.ID }

func (o Organization) WithID(id kernel.RecordID) Organization {
	o.ID = id
	return o
}

func (o Organization) WithAudit(a kernel.Audit) Organization {
	o.Audit = a
	return o
}

func (o Organization) Normalized() Organization {
	o.Organization = trim(o.Organization)
	o.Code = trim(o.Code)
	return o
}

func (o Organization) Fields() filter.Record {
	return fieldsWithAudit(o.Audit, filter.Record{
		"id":           int64(o.ID),
		"organization": o.Organization,
		"code":         o.Code,
	})
}

func OrganizationAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityOrganization).
		Search("organization", "code").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "organization", Header: "Organization"},
			filter.Column{Field: "code", Header: "Code"},
		)...)
}
