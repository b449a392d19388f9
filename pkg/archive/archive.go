// Package archive keeps a history of sealed settings images, so a known-good
// configuration can be captured before risky changes and restored later.
package archive

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/radioconsole/persist/pkg/codec"
)

const snapshotPrefix = "snapshot:"

// SnapshotInfo describes one stored snapshot. The ID is a ksuid, so creation
// time is recoverable from the ID itself.
type SnapshotInfo struct {
	ID        string
	CreatedAt int64 // Unix seconds, from the ksuid timestamp
}

// Archive stores settings snapshots in a pebble database.
type Archive struct {
	db *pebble.DB
}

// Open opens (or creates) the archive at the given directory.
func Open(dir string) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Append stores a snapshot of the image and returns its ID. Only sealed,
// valid images are accepted; archiving garbage would defeat the point of a
// known-good history.
func (a *Archive) Append(im *codec.Image) (string, error) {
	if !im.IsValid() {
		return "", fmt.Errorf("refusing to archive an invalid image")
	}

	data, err := im.MarshalBinary()
	if err != nil {
		return "", err
	}

	id := ksuid.New()
	key := []byte(snapshotPrefix + id.String())
	if err := a.db.Set(key, data, pebble.Sync); err != nil {
		return "", fmt.Errorf("failed to store snapshot: %w", err)
	}
	return id.String(), nil
}

// Get loads one snapshot by ID.
func (a *Archive) Get(id string) (*codec.Image, error) {
	data, closer, err := a.db.Get([]byte(snapshotPrefix + id))
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}
	defer closer.Close()

	im := &codec.Image{}
	if err := im.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return im, nil
}

// List returns all snapshots, newest first.
func (a *Archive) List() ([]SnapshotInfo, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(snapshotPrefix),
		UpperBound: []byte(snapshotPrefix + "\xff"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	defer iter.Close()

	var out []SnapshotInfo
	for iter.First(); iter.Valid(); iter.Next() {
		idStr := string(iter.Key()[len(snapshotPrefix):])
		id, err := ksuid.Parse(idStr)
		if err != nil {
			continue // foreign key in the keyspace, skip
		}
		out = append(out, SnapshotInfo{ID: idStr, CreatedAt: id.Time().Unix()})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Delete removes one snapshot.
func (a *Archive) Delete(id string) error {
	return a.db.Delete([]byte(snapshotPrefix+id), pebble.Sync)
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}
