package masterapi

import (
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/mastersrv"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeapi"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/gofiber/fiber/v2"
)

// PeopleHandlers adds the employee and role routes that are not plain CRUD
type PeopleHandlers struct {
	roles     *storesrv.Service[masterdata.Role]
	employees *storesrv.Service[masterdata.Employee]
	views     httpx.ViewResolver
}

func NewPeopleHandlers(roles *storesrv.Service[masterdata.Role], employees *storesrv.Service[masterdata.Employee], views httpx.ViewResolver) *PeopleHandlers {
	return &PeopleHandlers{roles: roles, employees: employees, views: views}
}

// EmployeeRoutes mounts PATCH /employees/:id/toggle
func (h *PeopleHandlers) EmployeeRoutes(mw *auth.Middleware) storeapi.Route {
	return func(g fiber.Router) {
		g.Patch("/:id/toggle", mw.RequireAnyScope(scopes.ScopeEmployeesToggle, scopes.ScopeEmployeesWrite), h.ToggleEmployee)
	}
}

// RoleRoutes mounts GET /roles/:id/members and the scope templates
func (h *PeopleHandlers) RoleRoutes(mw *auth.Middleware) storeapi.Route {
	return func(g fiber.Router) {
		g.Get("/templates/scopes", mw.RequireScope(scopes.ScopeRolesRead), h.ScopeTemplates)
		g.Get("/:id/members", mw.RequireAllScopes(scopes.ScopeRolesRead, scopes.ScopeEmployeesRead), h.RoleMembers)
	}
}

func (h *PeopleHandlers) ToggleEmployee(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	employee, err := mastersrv.ToggleEmployee(c.Context(), h.employees, auth.Actor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

func (h *PeopleHandlers) RoleMembers(c *fiber.Ctx) error {
	id, err := httpx.ParseID(c, "id")
	if err != nil {
		return err
	}

	criteria, err := httpx.Criteria(c, h.employees.Adapter(), h.views)
	if err != nil {
		return err
	}

	members, err := mastersrv.RoleMembers(c.Context(), h.roles, h.employees, id, criteria)
	if err != nil {
		return err
	}
	return c.JSON(httpx.NewList(members))
}

// ScopeTemplates lists the scope groups a new role can start from
func (h *PeopleHandlers) ScopeTemplates(c *fiber.Ctx) error {
	templates := make(fiber.Map)
	for _, name := range scopes.GroupNames() {
		templates[name] = scopes.TemplateFor(name)
	}
	type scopeInfo struct {
		Scope       string `json:"scope"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}
	all := scopes.GetAllScopes()
	infos := make([]scopeInfo, len(all))
	for i, s := range all {
		infos[i] = scopeInfo{Scope: s, Category: scopes.GetScopeCategory(s), Description: scopes.GetScopeDescription(s)}
	}
	return c.JSON(fiber.Map{
		"templates": templates,
		"scopes":    infos,
	})
}
