package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radioconsole/persist/pkg/codec"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_AppendAndGet(t *testing.T) {
	a := openTestArchive(t)

	im := codec.NewDefaultImage()
	id, err := a.Append(im)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, im.Payload, got.Payload)
	assert.Equal(t, im.Checksum, got.Checksum)
	assert.True(t, got.IsValid())
}

func TestArchive_RefusesInvalidImage(t *testing.T) {
	a := openTestArchive(t)

	im := codec.NewDefaultImage()
	im.Payload[0] ^= 0xFF // break validity without resealing

	_, err := a.Append(im)
	assert.Error(t, err)
}

func TestArchive_ListNewestFirst(t *testing.T) {
	a := openTestArchive(t)

	var ids []string
	for i := 0; i < 3; i++ {
		s := codec.DefaultSettings()
		s.ToneMix = int32(20 + i)
		im := &codec.Image{Payload: s.Encode()}
		im.Seal()

		id, err := a.Append(im)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	infos, err := a.List()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	// All appended snapshots are listed, in descending ID order. ksuid time
	// resolution is one second, so same-second appends have no defined
	// relative order beyond the ID sort.
	listed := map[string]bool{}
	for i, info := range infos {
		listed[info.ID] = true
		assert.NotZero(t, info.CreatedAt)
		if i > 0 {
			assert.Greater(t, infos[i-1].ID, info.ID)
		}
	}
	for _, id := range ids {
		assert.True(t, listed[id], "snapshot %s missing from listing", id)
	}
}

func TestArchive_Delete(t *testing.T) {
	a := openTestArchive(t)

	id, err := a.Append(codec.NewDefaultImage())
	require.NoError(t, err)

	require.NoError(t, a.Delete(id))

	_, err = a.Get(id)
	assert.Error(t, err)

	infos, err := a.List()
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestArchive_GetUnknownID(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Get("2QKhDaYbXuWkP7MvT0000000000")
	assert.Error(t, err)
}
