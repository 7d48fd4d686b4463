package masterdata

import (
	"strings"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// Entity names, also used as route segments and store collections
const (
	EntityOrganization = "organizations"
	EntityLocation     = "locations"
	EntityBusinessUnit = "business-units"
	EntityDivision     = "divisions"
	EntityDepartment   = "departments"
	EntityRole         = "roles"
	EntityEmployee     = "employees"
)

// auditColumns are appended to every admin export
var auditColumns = []filter.Column{
	{Field: "createdBy", Header: "Created By"},
	{Field: "createdOn", Header: "Created On"},
	{Field: "updatedBy", Header: "Updated By"},
	{Field: "updatedOn", Header: "Updated On"},
}

func fieldsWithAudit(a kernel.Audit, r filter.Record) filter.Record {
	for k, v := range a.Fields() {
		r[k] = v
	}
	return r
}

func columns(cols ...filter.Column) []filter.Column {
	return append(cols, auditColumns...)
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
