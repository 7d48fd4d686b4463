package masterapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/export"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/httpx"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/mastersrv"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/views"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	app   *fiber.App
	views *views.Service
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	ctx := context.Background()

	employeeRepo := store.NewMemoryRepository[masterdata.Employee](masterdata.EntityEmployee)
	require.NoError(t, employeeRepo.Seed(ctx,
		masterdata.Employee{ID: 1, Name: "Manjesh Anantram Nayak", EmployeeID: "3703795", Role: "Recruiter", Email: "Manjesh.Nayak@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 2, Name: "Adarsh U", EmployeeID: "180169", Role: "Admin", Email: "Adarsh.U@arcolab.com", IsActive: true},
		masterdata.Employee{ID: 3, Name: "Sivashankar Mohanty", EmployeeID: "180561", Role: "Recruiter", Email: "Sivashankar.Mohanty@arcolab.com", IsActive: false},
	))
	repos := mastersrv.MemoryRepositories()
	repos.Employees = employeeRepo
	require.NoError(t, repos.Roles.Seed(ctx, masterdata.Role{ID: 1, Role: "Recruiter", Member: 2}))

	services := mastersrv.NewServices(repos)
	viewSvc := views.NewService(views.NewMemoryRepository(0), services.Adapters()...)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler(false)})
	RegisterRoutes(app.Group("/api/v1"), auth.NewMiddleware(nil, false, ""), services, viewSvc)

	return testAPI{app: app, views: viewSvc}
}

func (a testAPI) do(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	if resp.StatusCode != fiber.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func names(body map[string]any) []string {
	var out []string
	for _, it := range body["items"].([]any) {
		out = append(out, it.(map[string]any)["name"].(string))
	}
	return out
}

func TestList_QueryCriteria(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, "GET", "/api/v1/employees?q=recruiter&isActive=true", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, []string{"Manjesh Anantram Nayak"}, names(body))

	status, body = api.do(t, "GET", "/api/v1/employees?status=Active,Inactive", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), body["total"])

	status, body = api.do(t, "GET", "/api/v1/employees?q=nobody", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])
	assert.Empty(t, body["items"])

	status, body = api.do(t, "GET", "/api/v1/employees?isActive=maybe", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, filter.CodeInvalidQuery, body["code"])
}

func TestSearch_Body(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, "POST", "/api/v1/employees/search",
		`{"criteria":[{"kind":"text-contains","field":"name","query":"SIVA"}]}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Sivashankar Mohanty"}, names(body))

	status, body = api.do(t, "POST", "/api/v1/employees/search", `{"criteria":[{"kind":"unknown-kind","field":"x"}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, filter.CodeUnknownKind, body["code"])

	status, body = api.do(t, "POST", "/api/v1/employees/search", `{"criteria":[{"kind":"text-contains","field":"salary","query":"1"}]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, filter.CodeUnknownField, body["code"])

	status, _ = api.do(t, "POST", "/api/v1/employees/search", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestList_SavedView(t *testing.T) {
	api := newTestAPI(t)

	v, err := api.views.Save(context.Background(), "Current User", masterdata.EntityEmployee, "Inactive",
		filter.NewBuilder().BooleanEquals("isActive", false).Specs())
	require.NoError(t, err)

	status, body := api.do(t, "GET", "/api/v1/employees?view="+v.ID, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Sivashankar Mohanty"}, names(body))

	status, body = api.do(t, "GET", "/api/v1/roles?view="+v.ID, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, views.CodeNotFound, body["code"])
}

func TestCRUDAndToggle(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, "POST", "/api/v1/employees", `{"name":"","employeeId":"1","role":"QA","email":"nope"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION.INVALID_INPUT", body["code"])

	status, body = api.do(t, "POST", "/api/v1/employees", `{"name":"Nikhila Dalapati","employeeId":"180519","role":"Recruiter","email":"nikhila.d@arcolab.com"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, float64(4), body["id"])
	assert.Equal(t, true, body["isActive"])
	assert.Equal(t, "Current User", body["createdBy"])

	status, body = api.do(t, "PATCH", "/api/v1/employees/4/toggle", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["isActive"])

	status, body = api.do(t, "PUT", "/api/v1/employees/4", `{"name":"Nikhila D","employeeId":"180519","role":"QA","email":"nikhila.d@arcolab.com"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Nikhila D", body["name"])

	status, _ = api.do(t, "DELETE", "/api/v1/employees/4", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = api.do(t, "GET", "/api/v1/employees/4", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, store.CodeNotFound, body["code"])

	status, body = api.do(t, "GET", "/api/v1/employees/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, httpx.CodeInvalidID, body["code"])
}

func TestRoleMembersAndTemplates(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, "GET", "/api/v1/roles/1/members?isActive=true", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Manjesh Anantram Nayak"}, names(body))

	status, body = api.do(t, "POST", "/api/v1/roles", `{"role":"QA"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.NotEmpty(t, body["scopes"])

	status, body = api.do(t, "GET", "/api/v1/roles/templates/scopes", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body["templates"], "recruiter")
	require.NotEmpty(t, body["scopes"])
	first := body["scopes"].([]any)[0].(map[string]any)
	assert.NotEqual(t, "Unknown", first["category"])
}

func TestFiltersSuggestExport(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, "GET", "/api/v1/employees/filters", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, masterdata.EntityEmployee, body["entity"])
	assert.NotEmpty(t, body["filters"])

	status, body = api.do(t, "GET", "/api/v1/employees/suggest?field=name&q=adr", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{"Adarsh U"}, body["suggestions"])

	resp, err := api.app.Test(httptest.NewRequest("GET", "/api/v1/employees/export?isActive=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "employees-")
}
