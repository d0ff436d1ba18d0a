package qmake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/qmakepatch/internal/testutil"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

func TestPatchImageFailFast(t *testing.T) {
	b := testutil.Qt4Image()
	img := NewImage(b.Bytes())

	err := PatchImage(img, "4.8.5", []string{
		"qt_prfxpath=/opt/qt4",
		"qt_plugpath=/opt/qt4/plugins", // not in the image
		"qt_libspath=/opt/qt4/lib",
	})
	require.Error(t, err)
	assert.Equal(t, types.DataFailure, types.CodeOf(err))

	got := img.Bytes()
	assert.Equal(t, "4.8.5\x00", string(got[b.Offset("version"):b.Offset("version")+6]))
	assert.Equal(t, "qt_prfxpath=/opt/qt4\x00", string(got[b.Offset("qt_prfxpath"):b.Offset("qt_prfxpath")+21]))
	assert.Equal(t,
		b.Bytes()[b.Offset("qt_libspath"):b.Offset("qt_libspath")+64],
		got[b.Offset("qt_libspath"):b.Offset("qt_libspath")+64],
		"variables after the failure are not attempted")
}

func TestPatchFile(t *testing.T) {
	b := testutil.Qt4Image()
	path := b.WriteFile(t, "qmake")

	res, err := PatchFile(path, "4.8.4", []string{
		"qt_prfxpath=/opt/qt4",
		"qt_libspath=/opt/qt4/lib",
	}, nil)
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Empty(t, res.BackupPath)
	assert.Equal(t, b.Len(), res.Size)
	assert.Equal(t, 2, res.Variables)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, b.Len(), "file size must not change")

	prfx := b.Offset("qt_prfxpath")
	assert.Equal(t, "qt_prfxpath=/opt/qt4\x00", string(got[prfx:prfx+21]))
	assert.Equal(t, make([]byte, 64-21), got[prfx+21:prfx+64])

	libs := b.Offset("qt_libspath")
	assert.Equal(t, "qt_libspath=/opt/qt4/lib\x00", string(got[libs:libs+25]))

	// Untouched fields keep their bytes.
	docs := b.Offset("qt_docspath")
	assert.Equal(t, b.Bytes()[docs:docs+64], got[docs:docs+64])
}

func TestPatchFileFailureLeavesFileUntouched(t *testing.T) {
	b := testutil.Qt4Image()
	path := b.WriteFile(t, "qmake")

	tests := []struct {
		name    string
		version string
		specs   []string
		code    types.Code
	}{
		{"unsupported major", "2", nil, types.BadConfig},
		{"spec without equals", "4.8.4", []string{"qt_prfxpath=/opt", "qt_libspath"}, types.BadConfig},
		{"missing variable", "4.8.4", []string{"qt_prfxpath=/opt", "qt_nonepath=/x"}, types.DataFailure},
		{"value too long", "", []string{"qt_prfxpath=/" + strings.Repeat("x", 80)}, types.DataFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PatchFile(path, tt.version, tt.specs, &Options{CreateBackup: true})
			require.Error(t, err)
			assert.Equal(t, tt.code, types.CodeOf(err))

			got, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, b.Bytes(), got, "file must not be written")

			backups, globErr := filepath.Glob(path + ".bak.*")
			require.NoError(t, globErr)
			assert.Empty(t, backups, "no backup before every rewrite succeeded")
		})
	}
}

func TestPatchFileMissing(t *testing.T) {
	_, err := PatchFile(filepath.Join(t.TempDir(), "qmake"), "4.8.4", nil, nil)
	require.Error(t, err)
	assert.Equal(t, types.FileFailure, types.CodeOf(err))
}

func TestPatchFileDryRun(t *testing.T) {
	b := testutil.Qt4Image()
	path := b.WriteFile(t, "qmake")

	res, err := PatchFile(path, "4.8.7", []string{"qt_prfxpath=/opt/qt4"}, &Options{DryRun: true, CreateBackup: true})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Empty(t, res.BackupPath)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), got)
}

func TestPatchFileBackup(t *testing.T) {
	b := testutil.Qt4Image()
	path := b.WriteFile(t, "qmake")

	res, err := PatchFile(path, "4.8.7", nil, &Options{CreateBackup: true, BackupSuffix: "orig"})
	require.NoError(t, err)
	require.NotEmpty(t, res.BackupPath)
	assert.Contains(t, res.BackupPath, "qmake.orig.")

	backup, err := os.ReadFile(res.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), backup, "backup holds the unpatched image")

	patched, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, b.Bytes(), patched)
	assert.Len(t, patched, len(backup))
}
