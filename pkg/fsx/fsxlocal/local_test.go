package fsxlocal

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Abraxas-365/talentdesk/pkg/errx"
	"github.com/Abraxas-365/talentdesk/pkg/fsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem_RoundTrip(t *testing.T) {
	ctx := context.Background()
	lfs, err := NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, lfs.WriteFile(ctx, "resumes/118820/cv.pdf", []byte("%PDF-1.4")))

	ok, err := lfs.Exists(ctx, "resumes/118820/cv.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := lfs.ReadFile(ctx, "resumes/118820/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	info, err := lfs.Stat(ctx, "resumes/118820/cv.pdf")
	require.NoError(t, err)
	assert.EqualValues(t, 8, info.Size)

	require.NoError(t, lfs.WriteFileStream(ctx, "resumes/118820/cv.pdf", strings.NewReader("replaced")))
	rc, err := lfs.ReadFileStream(ctx, "resumes/118820/cv.pdf")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "replaced", string(body))

	require.NoError(t, lfs.DeleteFile(ctx, "resumes/118820/cv.pdf"))
	ok, err = lfs.Exists(ctx, "resumes/118820/cv.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalFileSystem_Errors(t *testing.T) {
	ctx := context.Background()
	lfs, err := NewLocalFileSystem(t.TempDir())
	require.NoError(t, err)

	_, err = lfs.ReadFile(ctx, "missing.pdf")
	assert.True(t, fsx.IsNotFound(err))

	err = lfs.DeleteFile(ctx, "missing.pdf")
	assert.True(t, fsx.IsNotFound(err))

	for _, bad := range []string{"", "../etc/passwd", "a/../../b"} {
		err = lfs.WriteFile(ctx, bad, []byte("x"))
		assert.True(t, errx.HasCode(err, fsx.CodeInvalidPath), bad)
	}
}
