package mastersrv

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

func newEmployees(t *testing.T) *storesrv.Service[masterdata.Employee] {
	t.Helper()
	repo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	require.NoError(t, repo.Seed(context.Background(),
		masterdata.Employee{ID: 1, Name: "Manjesh Anantram Nayak", EmployeeID: "3703795", Role: "Recruiter", Email: "Manjesh.Nayak@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 2, Name: "Adarsh U", EmployeeID: "180169", Role: "Admin", Email: "Adarsh.U@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 3, Name: "Sivashankar Mohanty", EmployeeID: "180561", Role: "Recruiter", Email: "Sivashankar.Mohanty@arcolab.com", IsActive: false},
	))
	return storesrv.NewService[masterdata.Employee](repo, masterdata.EmployeeAdapter(),
		storesrv.WithCreateHook(ActivateOnCreate()),
		storesrv.WithClock[masterdata.Employee](fixedNow),
	)
}

func TestActivateOnCreate(t *testing.T) {
	created, err := newEmployees(t).Create(context.Background(), "Current User", masterdata.Employee{
		Name: "Nikhila Dalapati", EmployeeID: "180519", Role: "Recruiter", Email: "nikhila.d@arcolab.com",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
}

func TestToggleEmployee(t *testing.T) {
	svc := newEmployees(t)

	toggled, err := ToggleEmployee(context.Background(), svc, "Adarsh U", 3)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
	assert.Equal(t, "Adarsh U", toggled.UpdatedBy)

	toggled, err = ToggleEmployee(context.Background(), svc, "Adarsh U", 3)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestRoleScopesAndMembers(t *testing.T) {
	ctx := context.Background()
	roles := storesrv.NewService[masterdata.Role](
		store.NewMemoryRepository[masterdata.Role](masterdata.EntityRole),
		masterdata.RoleAdapter(),
		storesrv.WithCreateHook(RoleScopes()),
	)
	employees := newEmployees(t)

	recruiter, err := roles.Create(ctx, "Current User", masterdata.Role{Role: "Recruiter"})
	require.NoError(t, err)
	assert.Equal(t, scopes.TemplateFor("recruiter"), recruiter.Scopes)

	_, err = roles.Create(ctx, "Current User", masterdata.Role{Role: "Custom", Scopes: []string{"jobs:read", "rockets:launch"}})
	assert.True(t, errx.HasCode(err, CodeInvalidScopes))

	members, err := RoleMembers(ctx, roles, employees, recruiter.ID, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, members, 2)

	_, err = RoleMembers(ctx, roles, employees, 99, filter.Criteria{})
	assert.True(t, store.IsNotFound(err))
}
