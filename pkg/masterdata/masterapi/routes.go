package masterapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/mastersrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/gofiber/fiber/v2"
)

var (
	masterAccess   = storeapi.Access{Read: scopes.ScopeMasterDataRead, Write: scopes.ScopeMasterDataWrite, Delete: scopes.ScopeMasterDataDelete}
	roleAccess     = storeapi.Access{Read: scopes.ScopeRolesRead, Write: scopes.ScopeRolesWrite, Delete: scopes.ScopeRolesDelete}
	employeeAccess = storeapi.Access{Read: scopes.ScopeEmployeesRead, Write: scopes.ScopeEmployeesWrite, Delete: scopes.ScopeEmployeesDelete}
)

// RegisterRoutes monta las pantallas de administración bajo router
func RegisterRoutes(router fiber.Router, mw *auth.Middleware, s mastersrv.Services, views httpx.ViewResolver) {
	storeapi.NewHandlers(s.Organizations, views, masterAccess).RegisterRoutes(router, mw)
	storeapi.NewHandlers(s.Locations, views, masterAccess).RegisterRoutes(router, mw)
	storeapi.NewHandlers(s.BusinessUnits, views, masterAccess).RegisterRoutes(router, mw)
	storeapi.NewHandlers(s.Divisions, views, masterAccess).RegisterRoutes(router, mw)
	storeapi.NewHandlers(s.Departments, views, masterAccess).RegisterRoutes(router, mw)

	people := NewPeopleHandlers(s.Roles, s.Employees, views)
	storeapi.NewHandlers(s.Roles, views, roleAccess).RegisterRoutes(router, mw, people.RoleRoutes(mw))
	storeapi.NewHandlers(s.Employees, views, employeeAccess).RegisterRoutes(router, mw, people.EmployeeRoutes(mw))
}
