package mastersrv

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
)

var ErrRegistry = errx.NewRegistry("MASTERDATA")

var CodeInvalidScopes = ErrRegistry.Register("INVALID_SCOPES", errx.TypeValidation, http.StatusBadRequest, "Role contains unknown scopes")

func ErrInvalidScopes(bad []string) *errx.Error {
	return ErrRegistry.New(CodeInvalidScopes).WithDetail("scopes", bad)
}

// RoleScopes gives a role without explicit scopes the template matching its name
func RoleScopes() storesrv.Hook[masterdata.Role] {
	return func(_ context.Context, r masterdata.Role) (masterdata.Role, error) {
		if len(r.Scopes) == 0 {
			r.Scopes = scopes.TemplateFor(r.Role)
			return r, nil
		}
		if bad := scopes.InvalidScopes(r.Scopes); len(bad) > 0 {
			return r, ErrInvalidScopes(bad)
		}
		return r, nil
	}
}

// ActivateOnCreate marks new employees active
func ActivateOnCreate() storesrv.Hook[masterdata.Employee] {
	return func(_ context.Context, e masterdata.Employee) (masterdata.Employee, error) {
		e.IsActive = true
		return e, nil
	}
}

// ToggleEmployee activa o desactiva un empleado
func ToggleEmployee(ctx context.Context, employees *storesrv.Service[masterdata.Employee], actor string, id kernel.RecordID) (masterdata.Employee, error) {
	return employees.Mutate(ctx, actor, id, masterdata.Employee.Toggled)
}

// RoleMembers lista los empleados que tienen el rol indicado
func RoleMembers(ctx context.Context, roles *storesrv.Service[masterdata.Role], employees *storesrv.Service[masterdata.Employee], id kernel.RecordID, c filter.Criteria) ([]masterdata.Employee, error) {
	role, err := roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := employees.List(ctx, c)
	if err != nil {
		return nil, err
	}

	out := make([]masterdata.Employee, 0, len(members))
	for _, e := range members {
		if e.HasRole(role.Role) {
			out = append(out, e)
		}
	}
	return out, nil
}
