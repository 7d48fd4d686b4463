// Package seed carga los datos de demostración de las pantallas en
// repositorios vacíos.
package seed

import (
	"context"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/kernel"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata/mastersrv"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/store"
)

// Repositories are the collections Load fills
type Repositories struct {
	Resumes    store.Repository[resume.Resume]
	Jobs       store.Repository[job.Job]
	Candidates store.Repository[candidate.Candidate]
	Interviews store.Repository[interview.Round]
	Master     mastersrv.Repositories
}

// Load seeds every collection that is still empty and returns how many
// records were written per entity. Collections with data are left alone.
func Load(ctx context.Context, r Repositories) (map[string]int, error) {
	written := make(map[string]int)
	steps := []func() error{
		func() error { return fill(ctx, r.Resumes, Resumes(), written) },
		func() error { return fill(ctx, r.Jobs, Jobs(), written) },
		func() error { return fill(ctx, r.Candidates, Candidates(), written) },
		func() error { return fill(ctx, r.Interviews, Interviews(), written) },
		func() error { return fill(ctx, r.Master.Organizations, Organizations(), written) },
		func() error { return fill(ctx, r.Master.Locations, Locations(), written) },
		func() error { return fill(ctx, r.Master.BusinessUnits, BusinessUnits(), written) },
		func() error { return fill(ctx, r.Master.Divisions, Divisions(), written) },
		func() error { return fill(ctx, r.Master.Departments, Departments(), written) },
		func() error { return fill(ctx, r.Master.Roles, Roles(), written) },
		func() error { return fill(ctx, r.Master.Employees, Employees(), written) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return written, err
		}
	}
	return written, nil
}

func fill[T store.Entity[T]](ctx context.Context, repo store.Repository[T], items []T, written map[string]int) error {
	if repo == nil {
		return nil
	}
	n, err := repo.Count(ctx)
	if err != nil {
		return errx.Wrap(err, "count "+repo.Entity(), errx.TypeInternal)
	}
	if n > 0 {
		logx.WithFields(logx.Fields{"entity": repo.Entity(), "records": n}).Debug("seed skipped")
		return nil
	}
	if err := repo.Seed(ctx, items...); err != nil {
		return err
	}
	written[repo.Entity()] = len(items)
	logx.WithFields(logx.Fields{"entity": repo.Entity(), "records": len(items)}).Info("seeded")
	return nil
}

var dayLayouts = []string{"02-Jan-2006", "02-Jan-06", kernel.DateLayout}

// day turns the "07-Jul-2023" dates of the admin screens into record dates
func day(s string) string {
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return kernel.Today(t)
		}
	}
	return ""
}

func audit(createdBy, createdOn, updatedBy, updatedOn string) kernel.Audit {
	return kernel.Audit{
		CreatedBy: createdBy,
		CreatedOn: day(createdOn),
		UpdatedBy: updatedBy,
		UpdatedOn: day(updatedOn),
	}
}
