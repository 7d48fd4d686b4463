package seed

import (
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
)

func Organizations() []masterdata.Organization {
	return []masterdata.Organization{
		{ID: 1, Organization: "Arcolab", Code: "0001", Audit: audit("Admin", "2024-01-15", "Admin", "2024-01-15")},
	}
}

func Locations() []masterdata.Location {
	return []masterdata.Location{
		{ID: 1, Location: "Bangalore", Code: "BLR1", Country: "India", Timezone: "UTC+05:30", YearStart: "01-Apr-23",
			Audit: audit("pranit way", "07-Jul-2023", "Michael Khundrakpam", "10-Jul-2023")},
		{ID: 2, Location: "Chennai", Code: "Chennai1", Country: "India", Timezone: "UTC+05:30", YearStart: "01-Apr-23",
			Audit: audit("Michael Khundrakpam", "10-Jul-2023", "", "")},
	}
}

func BusinessUnits() []masterdata.BusinessUnit {
	return []masterdata.BusinessUnit{
		{ID: 1, BusinessUnit: "Arcolab", Organization: "Arcolab", Location: "Bangalore", Audit: audit("pranit way", "07-Jul-2023", "", "")},
	}
}

func Divisions() []masterdata.Division {
	return []masterdata.Division{
		{ID: 1, Division: "Arcolab Bangalore", DivisionCode: "ARBA", BusinessUnit: "Arcolab",
			Audit: audit("Michael Khundrakpam S", "10-Jul-2023", "Michael Khundrakpam S", "10-Jul-2023")},
		{ID: 2, Division: "Arcolab Chennai", DivisionCode: "ARCH", BusinessUnit: "Arcolab",
			Audit: audit("Bharath Kumar P", "10-Jul-2023", "Michael Khundrakpam S", "10-Jul-2023")},
		{ID: 3, Division: "IT", DivisionCode: "IT-001", BusinessUnit: "Arcolab",
			Audit: audit("pranit way", "07-Jul-2023", "Michael Khundrakpam S", "10-Jul-2023")},
	}
}

func Departments() []masterdata.Department {
	return []masterdata.Department{
		{ID: 1, Department: "IT", Code: "Arcolab-ba", Division: "Arcolab Bangalore", BusinessUnit: "Arcolab",
			Audit: audit("Michael Khundrakpam S", "10-Jul-23", "", "")},
		{ID: 2, Department: "HRTA", Code: "Arcolab-ba", Division: "Arcolab Bangalore", BusinessUnit: "Arcolab",
			Audit: audit("Michael Khundrakpam S", "10-Jul-23", "Michael Khundrakpam S", "10-Jul-23")},
		{ID: 3, Department: "PMO", Code: "Arcolab-ba", Division: "Arcolab Bangalore", BusinessUnit: "Arcolab",
			Audit: audit("Bharath Kumar P", "10-Jul-23", "Michael Khundrakpam S", "10-Jul-23")},
	}
}

// Roles carry the scope template of their name, as a role created from the screen would
func Roles() []masterdata.Role {
	return []masterdata.Role{
		{ID: 1, Role: "QA", Member: 2, Scopes: scopes.TemplateFor("QA"),
			Audit: audit("pranit way", "07-Jul-2023", "swarna latha", "05-Mar-2025")},
		{ID: 2, Role: "Recruiter", Member: 16, Scopes: scopes.TemplateFor("Recruiter"),
			Audit: audit("swarna latha", "11-Dec-2024", "swarna latha", "05-Mar-2025")},
		{ID: 3, Role: "Admin", Member: 18, Scopes: scopes.TemplateFor("Admin"),
			Audit: audit("", "", "swarna latha", "31-Jan-2025")},
	}
}

func Employees() []masterdata.Employee {
	type row struct {
		name, employeeID, role, email string
		createdBy, createdOn          string
		updatedBy, updatedOn          string
	}
	rows := []row{
		{"Manjesh Anantram Nayak", "3703795", "Recruiter", "Manjesh.Nayak@arcolab.com", "Adarsh U", "09-Jul-2025", "", ""},
		{"Adarsh U", "180169", "Admin", "Adarsh.U@arcolab.com", "Michael Khundrakpam S", "10-Jul-2023", "swarna latha", "12-Jun-2025"},
		{"EMAIL INTEGRATION", "NEWEMAIL", "Admin", "swarmalatha.ki@neviton.com", "swarna latha", "14-May-2025", "", ""},
		{"DB STRIDES", "NEWDBSTR", "Admin", "strides@gmail.com", "swarna latha", "23-Dec-2024", "", ""},
		{"DB ARCOLAB", "NEWDBAR", "Admin", "arcolab@gmail.com", "swarna latha", "23-Dec-2024", "", ""},
		{"DB STELLIS", "NEWDBSTL", "Admin", "stellis@gmail.com", "swarna latha", "23-Dec-2024", "", ""},
		{"Silvaster Antony", "40001949", "Recruiter", "silvaster.antony@arcolab.com", "Michael Khundrakpam S", "10-Jul-2023", "swarna latha", "11-Dec-2024"},
		{"Sivashankar Mohanty", "180561", "Recruiter", "Sivashankar.Mohanty@arcolab.com", "Michael Khundrakpam S", "10-Jul-2023", "swarna latha", "11-Dec-2024"},
		{"Anupama KV", "180557", "Recruiter", "Anupama.KV@arcolab.com", "Michael Khundrakpam S", "10-Jul-2023", "swarna latha", "11-Dec-2024"},
		{"Nikhila Dalapati", "180519", "Recruiter", "nikhila.d@arcolab.com", "Michael Khundrakpam S", "10-Jul-2023", "Srinivas Makala", "11-Dec-2024"},
	}
	out := make([]masterdata.Employee, len(rows))
	for i, r := range rows {
		out[i] = masterdata.Employee{
			ID:         kernel.RecordID(i + 1),
			Name:       r.name,
			EmployeeID: r.employeeID,
			Role:       r.role,
			Email:      r.email,
			IsActive:   true,
			Audit:      audit(r.createdBy, r.createdOn, r.updatedBy, r.updatedOn),
		}
	}
	return out
}
