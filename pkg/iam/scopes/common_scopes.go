package scopes

// ============================================================================
// ADMIN SCOPES - master data, people and reporting
// ============================================================================

const (
	// Super scope - full access to everything
	ScopeAll = "*"

	ScopeAdminAll   = "admin:*"
	ScopeAdminRead  = "admin:read"
	ScopeAdminWrite = "admin:write"

	// Organizations, locations, business units, divisions, departments
	ScopeMasterDataAll    = "masterdata:*"
	ScopeMasterDataRead   = "masterdata:read"
	ScopeMasterDataWrite  = "masterdata:write"
	ScopeMasterDataDelete = "masterdata:delete"

	ScopeRolesAll    = "roles:*"
	ScopeRolesRead   = "roles:read"
	ScopeRolesWrite  = "roles:write"
	ScopeRolesDelete = "roles:delete"

	ScopeEmployeesAll    = "employees:*"
	ScopeEmployeesRead   = "employees:read"
	ScopeEmployeesWrite  = "employees:write"
	ScopeEmployeesDelete = "employees:delete"
	ScopeEmployeesToggle = "employees:toggle" // activate / deactivate

	ScopeReportsAll         = "reports:*"
	ScopeReportsView        = "reports:view"
	ScopeReportsExport      = "reports:export"
	ScopeAnalyticsDashboard = "analytics:dashboard"

	// Saved filter views
	ScopeViewsAll   = "views:*"
	ScopeViewsRead  = "views:read"
	ScopeViewsWrite = "views:write"
)

// CommonScopeCategories organizes admin scopes by screen
var CommonScopeCategories = map[string][]string{
	"Administration": {
		ScopeAll,
		ScopeAdminAll,
		ScopeAdminRead,
		ScopeAdminWrite,
	},
	"Master Data": {
		ScopeMasterDataAll,
		ScopeMasterDataRead,
		ScopeMasterDataWrite,
		ScopeMasterDataDelete,
	},
	"Roles": {
		ScopeRolesAll,
		ScopeRolesRead,
		ScopeRolesWrite,
		ScopeRolesDelete,
	},
	"Employees": {
		ScopeEmployeesAll,
		ScopeEmployeesRead,
		ScopeEmployeesWrite,
		ScopeEmployeesDelete,
		ScopeEmployeesToggle,
	},
	"Reports & Analytics": {
		ScopeReportsAll,
		ScopeReportsView,
		ScopeReportsExport,
		ScopeAnalyticsDashboard,
	},
	"Views": {
		ScopeViewsAll,
		ScopeViewsRead,
		ScopeViewsWrite,
	},
}

var CommonScopeDescriptions = map[string]string{
	ScopeAll: "Full access to all system resources",

	ScopeAdminAll:   "Full administrative access",
	ScopeAdminRead:  "View administrative screens",
	ScopeAdminWrite: "Modify administrative screens",

	ScopeMasterDataAll:    "Full access to organizations, locations, business units, divisions and departments",
	ScopeMasterDataRead:   "View master data",
	ScopeMasterDataWrite:  "Create and edit master data",
	ScopeMasterDataDelete: "Delete master data",

	ScopeRolesAll:    "Full access to role management",
	ScopeRolesRead:   "View roles and their members",
	ScopeRolesWrite:  "Create and edit roles",
	ScopeRolesDelete: "Delete roles",

	ScopeEmployeesAll:    "Full access to the employee master",
	ScopeEmployeesRead:   "View employees",
	ScopeEmployeesWrite:  "Create and edit employees",
	ScopeEmployeesDelete: "Delete employees",
	ScopeEmployeesToggle: "Activate and deactivate employees",

	ScopeReportsAll:         "Full access to reporting",
	ScopeReportsView:        "View reports",
	ScopeReportsExport:      "Download spreadsheet exports",
	ScopeAnalyticsDashboard: "Access the recruiting dashboard",

	ScopeViewsAll:   "Full access to saved filter views",
	ScopeViewsRead:  "Use saved filter views",
	ScopeViewsWrite: "Save and delete filter views",
}

var CommonScopeGroups = map[string][]string{
	"super_admin": {
		ScopeAll,
	},
	"admin": {
		ScopeAdminAll,
		ScopeMasterDataAll,
		ScopeRolesAll,
		ScopeEmployeesAll,
		ScopeReportsAll,
		ScopeAnalyticsDashboard,
		ScopeViewsAll,
		ScopeJobsAll,
		ScopeCandidatesAll,
		ScopeInterviewsAll,
		ScopeResumesAll,
	},
	"viewer": {
		ScopeMasterDataRead,
		ScopeRolesRead,
		ScopeEmployeesRead,
		ScopeReportsView,
		ScopeViewsRead,
	},
}
