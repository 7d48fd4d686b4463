package masterdata

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
)

// Location is an office site with its fiscal year window
type Location struct {
	ID        kernel.RecordID `json:"id"`
	Location  string          `json:"location" validate:"notblank"`
	Code      string          `json:"code" validate:"notblank"`
	Country   string          `json:"country" validate:"notblank"`
	Timezone  string          `json:"timezone" validate:"notblank"`
	YearStart string          `json:"yearStart"`
	YearEnd   string          `json:"yearEnd"`
	kernel.Audit
}

func (l Location) GetID() kernel.RecordID { return l.ID }

func (l Location) WithID(id kernel.RecordID) Location {
	l.ID = id
	return l
}

func (l Location) WithAudit(a kernel.Audit) Location {
	l.Audit = a
	// the fiscal year starts on the creation date unless given
	if l.YearStart == "" {
		l.YearStart = a.CreatedOn
	}
	return l
}

func (l Location) Normalized() Location {
	l.Location = trim(l.Location)
	l.Code = trim(l.Code)
	l.Country = trim(l.Country)
	l.Timezone = trim(l.Timezone)
	l.YearStart = trim(l.YearStart)
	l.YearEnd = trim(l.YearEnd)
	return l
}

func (l Location) Fields() filter.Record {
	return fieldsWithAudit(l.Audit, filter.Record{
		"id":        int64(l.ID),
		"location":  l.Location,
		"code":      l.Code,
		"country":   l.Country,
		"timezone":  l.Timezone,
		"yearStart": l.YearStart,
		"yearEnd":   l.YearEnd,
	})
}

func LocationAdapter() *filter.Adapter {
	return filter.NewAdapter(EntityLocation).
		Search("location", "code", "country").
		DerivedEnum("country", "Country").
		DerivedEnum("timezone", "Timezone").
		Expose("id").
		Columns(columns(
			filter.Column{Field: "location", Header: "Location"},
			filter.Column{Field: "code", Header: "Location Code"},
			filter.Column{Field: "country", Header: "Country"},
			filter.Column{Field: "timezone", Header: "Timezone"},
			filter.Column{Field: "yearStart", Header: "Year Start"},
			filter.Column{Field: "yearEnd", Header: "Year End"},
		)...)
}
