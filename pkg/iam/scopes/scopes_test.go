package scopes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFor(t *testing.T) {
	assert.Contains(t, TemplateFor("Recruiter"), ScopeResumesAll)
	assert.Contains(t, TemplateFor(" QA "), ScopeJobsRead)
	assert.Contains(t, TemplateFor("Hiring Manager"), ScopeInterviewsSchedule)
	assert.Contains(t, TemplateFor("Admin"), ScopeMasterDataAll)
	assert.Equal(t, GetScopesByGroup("viewer"), TemplateFor("Unknown Role"))
}

func TestTemplatesOnlyUseDefinedScopes(t *testing.T) {
	for _, name := range GroupNames() {
		assert.Empty(t, InvalidScopes(ScopeGroups[name]), name)
	}
}

func TestExpandWildcardScope(t *testing.T) {
	assert.Equal(t, []string{
		ScopeEmployeesDelete,
		ScopeEmployeesRead,
		ScopeEmployeesToggle,
		ScopeEmployeesWrite,
	}, ExpandWildcardScope(ScopeEmployeesAll))
	assert.Equal(t, []string{ScopeJobsRead}, ExpandWildcardScope(ScopeJobsRead))
}
