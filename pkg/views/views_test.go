package views

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeAdapter() *filter.Adapter {
	return filter.NewAdapter("resumes").
		Search("name", "email").
		Enum("status", "Status", "HIRED", "REJECTED").
		Number("score", "Score")
}

func TestService_SaveAndResolve(t *testing.T) {
	svc := NewService(NewMemoryRepository(0), resumeAdapter())
	ctx := context.Background()

	v, err := svc.Save(ctx, "Current User", "resumes", " Hired ", filter.NewBuilder().
		SetMembership("status", "HIRED").
		NumericRange("score", filter.Range{Min: 90, Max: 100}).
		Specs())
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "Hired", v.Name)

	specs, err := svc.Resolve(ctx, "resumes", v.ID)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, filter.KindSetMembership, specs[0].Kind)

	_, err = svc.Resolve(ctx, "jobs", v.ID)
	assert.True(t, errx.HasCode(err, CodeNotFound))
}

func TestService_SaveRejectsBadCriteria(t *testing.T) {
	svc := NewService(NewMemoryRepository(0), resumeAdapter())
	ctx := context.Background()

	_, err := svc.Save(ctx, "u", "resumes", "x", []filter.Spec{{Kind: "unknown-kind", Field: "x"}})
	assert.True(t, filter.IsConfigurationError(err))

	_, err = svc.Save(ctx, "u", "resumes", "x", filter.NewBuilder().TextContains("salary", "1").Specs())
	assert.True(t, filter.IsConfigurationError(err))

	_, err = svc.Save(ctx, "u", "resumes", "  ", nil)
	assert.True(t, errx.HasCode(err, CodeMissingName))

	_, err = svc.Save(ctx, "u", "payroll", "x", nil)
	assert.True(t, errx.HasCode(err, CodeUnknownScreen))
}

func TestMemoryRepository_Expiry(t *testing.T) {
	repo := NewMemoryRepository(time.Hour)
	now := time.Date(2025, 7, 9, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, View{ID: "a", Screen: "jobs", Name: "A", CreatedAt: now}))
	require.NoError(t, repo.Save(ctx, View{ID: "b", Screen: "jobs", Name: "B", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, repo.Save(ctx, View{ID: "c", Screen: "resumes", Name: "C", CreatedAt: now}))

	list, err := repo.List(ctx, "jobs")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)

	now = now.Add(time.Hour)
	_, err = repo.Get(ctx, "a")
	assert.True(t, errx.HasCode(err, CodeNotFound))
	assert.True(t, errx.HasCode(repo.Delete(ctx, "b"), CodeNotFound))

	list, err = repo.List(ctx, "jobs")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(NewMemoryRepository(0), resumeAdapter(), filter.NewAdapter("jobs"))
	ctx := context.Background()

	v, err := svc.Save(ctx, "u", "resumes", "mine", nil)
	require.NoError(t, err)

	assert.True(t, errx.HasCode(svc.Delete(ctx, "jobs", v.ID), CodeNotFound))
	require.NoError(t, svc.Delete(ctx, "resumes", v.ID))

	list, err := svc.List(ctx, "resumes")
	require.NoError(t, err)
	assert.Empty(t, list)
}
