package qmake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/qmakepatch/internal/testutil"
	"github.com/joshuapare/qmakepatch/pkg/types"
)

func TestRewriteBeaconDoesNotFit(t *testing.T) {
	data := []byte("-version\x00x\x00\x00\x00")
	require.Len(t, data, 13)
	img := NewImage(append([]byte(nil), data...))

	err := RewriteBeacon(img, "-version", "4.8.4", true)
	require.Error(t, err)
	assert.Equal(t, types.DataFailure, types.CodeOf(err))
	assert.Equal(t, data, img.Bytes(), "buffer must be unmodified")
	assert.Equal(t, 13, img.Size())
}

func TestRewriteBeaconSkipsNonPrintable(t *testing.T) {
	b := testutil.NewBuilder().
		Raw("-version\x00").Noise(8).
		Raw("-version\x00\n").Noise(8).
		Raw("-version\x00").Field("value", "3.3.8", 16).
		Noise(4)
	img := NewImage(b.Bytes())
	before := b.Bytes()

	require.NoError(t, RewriteBeacon(img, "-version", "3.3.9", true))

	off := b.Offset("value")
	assert.Equal(t, before[:off], img.Bytes()[:off], "earlier occurrences are untouched")
	assert.Equal(t, "3.3.9\x00", string(img.Bytes()[off:off+6]))
}

func TestRewriteBeaconOnlyNonPrintable(t *testing.T) {
	data := testutil.NewBuilder().
		Raw("QT_VERSION\x00\x01").Noise(8).
		Raw("QT_VERSION\x00\x7f").Noise(8).
		Bytes()
	img := NewImage(append([]byte(nil), data...))

	err := RewriteBeacon(img, "QT_VERSION", "4.8.4", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrDataFailure)
	assert.Contains(t, err.Error(), "could not find 'QT_VERSION' beacon")
	assert.Equal(t, data, img.Bytes())
}

func TestRewriteBeaconAtEndOfImage(t *testing.T) {
	data := []byte("junk\x01QT_VERSION\x00")
	img := NewImage(append([]byte(nil), data...))

	err := RewriteBeacon(img, "QT_VERSION", "4.8.4", true)
	require.Error(t, err)
	assert.Equal(t, types.DataFailure, types.CodeOf(err))
	assert.Equal(t, data, img.Bytes())
}

func TestRewriteBeaconMissing(t *testing.T) {
	img := NewImage([]byte("nothing to see here\x00\x01"))

	err := RewriteBeacon(img, ") (Qt ", "5.15.2", false)
	require.Error(t, err)
	assert.Equal(t, types.DataFailure, types.CodeOf(err))
}

func TestRewriteBeaconKeepsLayout(t *testing.T) {
	b := testutil.Qt4Image()
	img := NewImage(b.Bytes())
	before := b.Bytes()

	require.NoError(t, RewriteBeacon(img, "QT_VERSION", "4.8.7-custom", true))

	off := b.Offset("version")
	area := off + 16
	require.Len(t, img.Bytes(), len(before))
	assert.Equal(t, before[:off], img.Bytes()[:off])
	assert.Equal(t, before[area:], img.Bytes()[area:])
	assert.Equal(t, "4.8.7-custom\x00\x00\x00\x00", string(img.Bytes()[off:area]))
}

func TestFindBeacon(t *testing.T) {
	data := []byte("a-version\x00\x02-version\x004")

	p, ok := findBeacon(data, "-version")
	require.True(t, ok)
	assert.Equal(t, len(data)-1, p)

	_, ok = findBeacon(data[:len(data)-1], "-version")
	assert.False(t, ok, "beacon with no byte after it")
}
