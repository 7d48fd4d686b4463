package storesrv

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/validatex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC) }

func newEmployees(t *testing.T) *Service[masterdata.Employee] {
	t.Helper()
	repo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	require.NoError(t, repo.Seed(context.Background(),
		masterdata.Employee{ID: 1, Name: "Manjesh Anantram Nayak", EmployeeID: "3703795", Role: "Recruiter", Email: "Manjesh.Nayak@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 2, Name: "Adarsh U", EmployeeID: "180169", Role: "Admin", Email: "Adarsh.U@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 3, Name: "Sivashankar Mohanty", EmployeeID: "180561", Role: "Recruiter", Email: "Sivashankar.Mohanty@arcolab.com", IsActive: false},
	))
	return NewService[masterdata.Employee](repo, masterdata.EmployeeAdapter(),
		WithCreateHook[masterdata.Employee](func(_ context.Context, e masterdata.Employee) (masterdata.Employee, error) {
			e.IsActive = true
			return e, nil
		}),
		WithClock[masterdata.Employee](fixedNow),
	)
}

func TestService_CreateValidatesRequiredFields(t *testing.T) {
	svc := newEmployees(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Current User", masterdata.Employee{Name: "  ", EmployeeID: "1", Role: "QA", Email: "bad"})
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeValidation))
	assert.ElementsMatch(t, []string{"name", "email"}, validatex.Fields(err))

	items, err := svc.List(ctx, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, items, 3, "rejected create is not stored")
}

func TestService_CreateAssignsIDAndAudit(t *testing.T) {
	svc := newEmployees(t)

	created, err := svc.Create(context.Background(), "Current User", masterdata.Employee{
		Name: " Nikhila Dalapati ", EmployeeID: "180519", Role: "Recruiter", Email: "nikhila.d@arcolab.com",
	})
	require.NoError(t, err)

	assert.Equal(t, kernel.RecordID(4), created.ID)
	assert.Equal(t, "Nikhila Dalapati", created.Name)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Current User", created.CreatedBy)
	assert.Equal(t, "2025-07-09", created.CreatedOn)
}

func TestService_UpdateKeepsCreationAudit(t *testing.T) {
	repo := store.NewMemoryRepository[masterdata.Organization](masterdata.EntityOrganization)
	require.NoError(t, repo.Seed(context.Background(), masterdata.Organization{
		ID: 1, Organization: "Arcolab", Code: "0001",
		Audit: kernel.Audit{CreatedBy: "Admin", CreatedOn: "2024-01-15", UpdatedBy: "Admin", UpdatedOn: "2024-01-15"},
	}))
	svc := NewService[masterdata.Organization](repo, masterdata.OrganizationAdapter(), WithClock[masterdata.Organization](fixedNow))

	updated, err := svc.Update(context.Background(), "swarna latha", 1, masterdata.Organization{Organization: "Arcolab Ltd", Code: "0001"})
	require.NoError(t, err)
	assert.Equal(t, kernel.RecordID(1), updated.ID)
	assert.Equal(t, "Admin", updated.CreatedBy)
	assert.Equal(t, "2024-01-15", updated.CreatedOn)
	assert.Equal(t, "swarna latha", updated.UpdatedBy)
	assert.Equal(t, "2025-07-09", updated.UpdatedOn)

	_, err = svc.Update(context.Background(), "x", 42, masterdata.Organization{Organization: "a", Code: "b"})
	assert.True(t, store.IsNotFound(err))
}

func TestService_ListDefaultsToActiveEmployees(t *testing.T) {
	svc := newEmployees(t)

	c, err := svc.Adapter().Build(filter.NewBuilder().
		TextContainsAny("recruiter", svc.Adapter().SearchFields()...).
		BooleanEquals("isActive", true).
		Specs())
	require.NoError(t, err)

	items, err := svc.List(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Manjesh Anantram Nayak", items[0].Name)
}

func TestService_MutateTouchesAudit(t *testing.T) {
	svc := newEmployees(t)

	renamed, err := svc.Mutate(context.Background(), "Adarsh U", 1, func(e masterdata.Employee) masterdata.Employee {
		e.Role = "Admin"
		return e
	})
	require.NoError(t, err)
	assert.Equal(t, kernel.RecordID(1), renamed.ID)
	assert.Equal(t, "Admin", renamed.Role)
	assert.Equal(t, "Adarsh U", renamed.UpdatedBy)
	assert.Equal(t, "2025-07-09", renamed.UpdatedOn)
}

func TestService_OptionsAndSuggest(t *testing.T) {
	svc := newEmployees(t)
	ctx := context.Background()

	options, err := svc.Options(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, options)
	assert.Equal(t, "role", options[0].Field)
	require.Len(t, options[0].Options, 2)
	assert.Equal(t, "Recruiter", options[0].Options[0].Value)
	assert.Equal(t, 2, options[0].Options[0].Count)

	suggestions, err := svc.Suggest(ctx, "role", "adm", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin"}, suggestions)
}

func TestService_DeleteThenCreateDoesNotReuseID(t *testing.T) {
	svc := newEmployees(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 3))
	created, err := svc.Create(ctx, "Current User", masterdata.Employee{Name: "New", EmployeeID: "9", Role: "QA", Email: "new@arcolab.com"})
	require.NoError(t, err)
	assert.Equal(t, kernel.RecordID(4), created.ID)
}

func TestService_ChangeRefusedKeepsRecord(t *testing.T) {
	svc := newEmployees(t)
	ctx := context.Background()

	_, err := svc.Change(ctx, "Adarsh U", 1, func(e masterdata.Employee) (masterdata.Employee, error) {
		e.Email = "not-an-email"
		return e, nil
	})
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	stored, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Manjesh.Nayak@arcolab.com", stored.Email)
}

func TestService_MergeKeepsServerFields(t *testing.T) {
	repo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	require.NoError(t, repo.Seed(context.Background(),
		masterdata.Employee{ID: 1, Name: "Adarsh U", EmployeeID: "180169", Role: "Admin", Email: "Adarsh.U@arcolab.com", IsActive: true},
	))
	svc := NewService[masterdata.Employee](repo, masterdata.EmployeeAdapter(),
		WithMerge(func(existing, incoming masterdata.Employee) masterdata.Employee {
			incoming.IsActive = existing.IsActive
			return incoming
		}),
	)

	updated, err := svc.Update(context.Background(), "x", 1, masterdata.Employee{Name: "Adarsh", EmployeeID: "180169", Role: "Admin", Email: "Adarsh.U@arcolab.com"})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, "Adarsh", updated.Name)
}

func TestService_ConcurrentMutateKeepsEveryChange(t *testing.T) {
	svc := newEmployees(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Mutate(ctx, "Adarsh U", 2, func(e masterdata.Employee) masterdata.Employee {
				time.Sleep(time.Millisecond)
				e.EmployeeID += "+"
				return e
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "180169"+strings.Repeat("+", 25), stored.EmployeeID)
}

func TestService_CreateHookSeesPreviousCreates(t *testing.T) {
	repo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	errTaken := errors.New("employee id taken")
	svc := NewService[masterdata.Employee](repo, masterdata.EmployeeAdapter(),
		WithCreateHook[masterdata.Employee](func(ctx context.Context, e masterdata.Employee) (masterdata.Employee, error) {
			items, err := repo.List(ctx)
			if err != nil {
				return e, err
			}
			time.Sleep(5 * time.Millisecond)
			for _, it := range items {
				if it.EmployeeID == e.EmployeeID {
					return e, errTaken
				}
			}
			return e, nil
		}),
	)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		refused int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), "x", masterdata.Employee{Name: "Nikhila", EmployeeID: "180519", Role: "QA", Email: "n@arcolab.com"})
			if errors.Is(err, errTaken) {
				mu.Lock()
				refused++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 4, refused)
}

func TestService_CreatedHookRunsOnlyAfterStore(t *testing.T) {
	repo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	var seen []kernel.RecordID
	svc := NewService[masterdata.Employee](repo, masterdata.EmployeeAdapter(),
		WithCreatedHook(func(_ context.Context, e masterdata.Employee) { seen = append(seen, e.ID) }),
	)
	ctx := context.Background()

	_, err := svc.Create(ctx, "x", masterdata.Employee{Name: " ", EmployeeID: "1", Role: "QA", Email: "a@arcolab.com"})
	require.Error(t, err)
	assert.Empty(t, seen)

	created, err := svc.Create(ctx, "x", masterdata.Employee{Name: "Ana", EmployeeID: "1", Role: "QA", Email: "a@arcolab.com"})
	require.NoError(t, err)
	assert.Equal(t, []kernel.RecordID{created.ID}, seen)
}

func TestService_UpdateCheckRefusesReplacement(t *testing.T) {
	svc := NewService[masterdata.Employee](newEmployees(t).repo, masterdata.EmployeeAdapter(),
		WithUpdateCheck(func(existing, _ masterdata.Employee) error {
			if !existing.IsActive {
				return errors.New("inactive")
			}
			return nil
		}),
	)
	ctx := context.Background()

	_, err := svc.Update(ctx, "x", 3, masterdata.Employee{Name: "Siva", EmployeeID: "180561", Role: "Recruiter", Email: "s@arcolab.com"})
	assert.EqualError(t, err, "inactive")
	stored, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Sivashankar Mohanty", stored.Name)

	_, err = svc.Update(ctx, "x", 1, masterdata.Employee{Name: "Manjesh", EmployeeID: "3703795", Role: "Recruiter", Email: "m@arcolab.com"})
	assert.NoError(t, err)
}
