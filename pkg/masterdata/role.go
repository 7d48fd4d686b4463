package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// Role groups employees and carries the access scopes granted to them
type Role struct {
	ID     kernel.RecordID `json:"id"`
	Role   string          `json:"role" validate:"notblank"`
	Member int             `json:"member" validate:"gte=0"`
	Scopes []string        `json:"scopes"`
	kernel.Audit
}

func (r Role) GetID() kernel.RecordID { return r.ID }

func (r Role) WithID(id kernel.RecordID) Role {
	r.ID = id
	return r
}

func (r Role) WithAudit(a kernel.Audit) Role {
	r.Audit = a
	return r
}

func (r Role) Normalized() Role {
	r.Role = trim(r.Role)
	return r
}

func (r Role) Fields() filter.Record {
	return fieldsWithAudit(r.Audit, filter.Record{
		"id":     int64(r.ID),
		"role":   r.Role,
		"member": r.Member,
	})
}

func RoleAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityRole).
		Search("role", "createdBy").
		Number("member", "Members",
			filter.Bucket{Label: "None", Range: filter.Range{Min: 0, Max: 0}},
			filter.Bucket{Label: "1-10", Range: filter.Range{Min: 1, Max: 10}},
			filter.Bucket{Label: "11+", Range: filter.Range{Min: 11, Max: 1_000_000}},
		).
		Expose("id").
		Columns(columns(
			filter.Column{Field: "role", Header: "Role"},
			filter.Column{Field: "member", Header: "Member"},
		)...)
}
