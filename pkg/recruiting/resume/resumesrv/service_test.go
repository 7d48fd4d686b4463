package resumesrv

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\n")

func newService(t *testing.T) (*Service, *fsxlocal.LocalFileSystem) {
	t.Helper()
	repo := store.NewMemoryRepository[resume.Resume](resume.Entity)
	require.NoError(t, repo.Seed(context.Background(),
		resume.Resume{ID: 118818, Name: "GOWTHAMI A", Email: "gowthami456@gmail.com", Status: resume.StatusHired, Location: "Bangalore", Experience: "2-4 years", Score: 92},
		resume.Resume{ID: 118819, Name: "Saguntaj Manj", Email: "manju2041599@gmail.com", Status: resume.StatusHired, Location: "Mumbai", Experience: "3-5 years", Score: 76},
		resume.Resume{ID: 118820, Name: "Sivasankaran S", Email: "sivasankaran773@gmail.com", Status: resume.StatusOffered, Location: "Chennai", Experience: "5-7 years", Score: 95},
	))

	fs, err := fsxlocal.NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2025, 7, 9, 10, 0, 0, 0, time.UTC) }
	return NewService(repo, fs, 0, storesrv.WithClock[resume.Resume](clock)), fs
}

func TestHiredHighScore(t *testing.T) {
	svc, _ := newService(t)

	c, err := resume.Adapter().Build(filter.NewBuilder().
		SetMembership("status", "hired").
		NumericRange("score", filter.Range{Min: 90, Max: 100}).
		Specs())
	require.NoError(t, err)

	items, err := svc.Records().List(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "RSM118818", items[0].Code())
}

func TestCreate_DefaultsAndStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Records().Create(ctx, "Current User", resume.Resume{Name: " Kishore R ", Email: "kishore@example.com"})
	require.NoError(t, err)
	assert.Equal(t, resume.StatusNew, created.Status)
	assert.Equal(t, "Kishore R", created.Name)
	assert.Equal(t, "RSM118821", created.Code())

	_, err = svc.Records().Create(ctx, "Current User", resume.Resume{Name: "X", Status: "GHOSTED"})
	assert.True(t, errx.HasCode(err, CodeInvalidStatus))

	updated, err := svc.UpdateStatus(ctx, "Adarsh U", created.ID, "on hold")
	require.NoError(t, err)
	assert.Equal(t, resume.StatusOnHold, updated.Status)
	assert.Equal(t, "2025-07-09", updated.UpdatedOn)

	_, err = svc.UpdateStatus(ctx, "Adarsh U", created.ID, "maybe")
	assert.True(t, errx.HasCode(err, CodeInvalidStatus))
}

func TestUpload(t *testing.T) {
	svc, fs := newService(t)
	ctx := context.Background()

	created, err := svc.Upload(ctx, "Current User", []recruiting.Upload{
		{FileName: "Dhivakaran_P.pdf", Data: pdf},
		{FileName: "kishore-r.pdf", Data: pdf},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "Dhivakaran P", created[0].Name)
	assert.Equal(t, resume.StatusNew, created[1].Status)
	assert.Equal(t, "Current User", created[1].UploadedBy)

	file, data, err := svc.Download(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
	assert.Equal(t, recruiting.MimePDF, file.ContentType)

	// the file survives an edit that does not send it
	edited := created[0]
	edited.File = nil
	edited.Location = "Chennai"
	updated, err := svc.Records().Update(ctx, "Current User", edited.ID, edited)
	require.NoError(t, err)
	assert.True(t, updated.HasFile())

	require.NoError(t, svc.Records().Delete(ctx, created[0].ID))
	exists, err := fs.Exists(ctx, file.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpload_RejectsWholeBatch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "Current User", []recruiting.Upload{
		{FileName: "ok.pdf", Data: pdf},
		{FileName: "photo.png", Data: []byte("\x89PNG\r\n\x1a\n0000")},
	})
	assert.True(t, errx.HasCode(err, recruiting.CodeInvalidFileType))

	n, err := svc.Records().List(ctx, filter.Criteria{})
	require.NoError(t, err)
	assert.Len(t, n, 3)

	_, err = svc.Upload(ctx, "Current User", nil)
	assert.True(t, errx.HasCode(err, CodeNoFiles))
}

func TestDownload_NoFile(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Download(context.Background(), 118818)
	assert.True(t, errx.HasCode(err, CodeNoFile))

	r, err := svc.ByCode(context.Background(), "rsm118820")
	require.NoError(t, err)
	assert.Equal(t, "Sivasankaran S", r.Name)
}
