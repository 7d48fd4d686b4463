package job

import (
	"math"
	"net/url"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/validatex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalary_Bounds(t *testing.T) {
	assert.NoError(t, validatex.Struct(Salary{Min: 0, Max: MaxSalary, Currency: "USD"}))
	assert.ElementsMatch(t, []string{"min", "max"},
		validatex.Fields(validatex.Struct(Salary{Min: MaxSalary + 1, Max: math.MaxInt64})))
}

func TestSalary_Amount(t *testing.T) {
	assert.Equal(t, "7.5 LPA", Salary{}.Amount(750000))
	assert.Equal(t, "$120,000.00", Salary{Currency: "usd"}.Amount(120000))
	assert.Equal(t, "9223372036854775807 USD", Salary{Currency: "USD"}.Amount(math.MaxInt64))
}

func TestAdapter_EmploymentTypeFilter(t *testing.T) {
	jobs := []Job{
		{ID: 4567, Title: "Azure - Senior Associate", EmploymentType: "Full Time, Permanent"},
		{ID: 7832, Title: "Senior Data Engineer", EmploymentType: "Contract"},
	}

	c, err := Adapter().FromQuery(url.Values{"employmentType": {"Full Time, Permanent"}})
	require.NoError(t, err)
	matched := filter.Apply(jobs, c)
	require.Len(t, matched, 1)
	assert.Equal(t, "Azure - Senior Associate", matched[0].Title)
}
