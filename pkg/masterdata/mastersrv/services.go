package mastersrv

import (
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

// Repositories holds one repository per admin table
type Repositories struct {
	Organizations store.Repository[masterdata.Organization]
	Locations     store.Repository[masterdata.Location]
	BusinessUnits store.Repository[masterdata.BusinessUnit]
	Divisions     store.Repository[masterdata.Division]
	Departments   store.Repository[masterdata.Department]
	Roles         store.Repository[masterdata.Role]
	Employees     store.Repository[masterdata.Employee]
}

// MemoryRepositories keeps every admin table in process memory
func MemoryRepositories() Repositories {
	return Repositories{
		Organizations: store.NewMemoryRepository[masterdata.Organization](masterdata.EntityOrganization),
		Locations:     store.NewMemoryRepository[masterdata.Location](masterdata.EntityLocation),
		BusinessUnits: store.NewMemoryRepository[masterdata.BusinessUnit](masterdata.EntityBusinessUnit),
		Divisions:     store.NewMemoryRepository[masterdata.Division](masterdata.EntityDivision),
		Departments:   store.NewMemoryRepository[masterdata.Department](masterdata.EntityDepartment),
		Roles:         store.NewMemoryRepository[masterdata.Role](masterdata.EntityRole),
		Employees:     store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee),
	}
}

// Services agrupa los servicios de las tablas maestras
type Services struct {
	Organizations *storesrv.Service[masterdata.Organization]
	Locations     *storesrv.Service[masterdata.Location]
	BusinessUnits *storesrv.Service[masterdata.BusinessUnit]
	Divisions     *storesrv.Service[masterdata.Division]
	Departments   *storesrv.Service[masterdata.Department]
	Roles         *storesrv.Service[masterdata.Role]
	Employees     *storesrv.Service[masterdata.Employee]
}

func NewServices(r Repositories) Services {
	return Services{
		Organizations: storesrv.NewService[masterdata.Organization](r.Organizations, masterdata.OrganizationAdapter()),
		Locations:     storesrv.NewService[masterdata.Location](r.Locations, masterdata.LocationAdapter()),
		BusinessUnits: storesrv.NewService[masterdata.BusinessUnit](r.BusinessUnits, masterdata.BusinessUnitAdapter()),
		Divisions:     storesrv.NewService[masterdata.Division](r.Divisions, masterdata.DivisionAdapter()),
		Departments:   storesrv.NewService[masterdata.Department](r.Departments, masterdata.DepartmentAdapter()),
		Roles: storesrv.NewService[masterdata.Role](r.Roles, masterdata.RoleAdapter(),
			storesrv.WithCreateHook(RoleScopes()),
			storesrv.WithUpdateHook(RoleScopes()),
		),
		Employees: storesrv.NewService[masterdata.Employee](r.Employees, masterdata.EmployeeAdapter(),
			storesrv.WithCreateHook(ActivateOnCreate()),
		),
	}
}

// Adapters lists the filter adapters of every table, for saved views
func (s Services) Adapters() []*filter.Adapter {
	return []*filter.Adapter{
		s.Organizations.Adapter(),
		s.Locations.Adapter(),
		s.BusinessUnits.Adapter(),
		s.Divisions.Adapter(),
		s.Departments.Adapter(),
		s.Roles.Adapter(),
		s.Employees.Adapter(),
	}
}
