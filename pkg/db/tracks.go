package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Track struct {
	UUID  string `db:"uuid"`
	Name  string `db:"name"`
	Type  string `db:"type"`
	Table string `db:"table_name"`
}

// Attribute is a display property of a track. Value is stored as given, so
// numbers stay numeric in SQLite.
type Attribute struct {
	Key   string
	Value any
}

// Tables holding rows keyed by a track's uuid, with the column naming it.
var trackDependents = []struct {
	table  string
	column string
}{
	{"tracks", "uuid"},
	{"datasets_tracks", "tracks_uuid"},
	{"attributes", "uuid"},
	{"block_index", "tracks_uuid"},
}

// FindTrackUUIDs returns the uuids of tracks whose name matches a LIKE pattern.
func FindTrackUUIDs(ctx context.Context, q sqlx.QueryerContext, pattern string) ([]string, error) {
	var uuids []string
	if err := sqlx.SelectContext(ctx, q, &uuids, `select uuid from tracks where name like ?`, pattern); err != nil {
		return nil, fmt.Errorf("find tracks %q: %w", pattern, err)
	}
	return uuids, nil
}

func ListTracks(ctx context.Context, q sqlx.QueryerContext, datasetUUID string) ([]Track, error) {
	var tracks []Track
	err := sqlx.SelectContext(ctx, q, &tracks, `
		select tracks.uuid, tracks.name, tracks.type, tracks.table_name
		from datasets_tracks join tracks on datasets_tracks.tracks_uuid = tracks.uuid
		where datasets_tracks.datasets_uuid = ?
		order by tracks.rowid`, datasetUUID)
	if err != nil {
		return nil, err
	}
	return tracks, nil
}

func TrackAttributes(ctx context.Context, q sqlx.QueryerContext, trackUUID string) (map[string]string, error) {
	rows, err := q.QueryxContext(ctx, `select key, cast(value as text) from attributes where uuid = ?`, trackUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attrs := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		attrs[k] = v
	}
	return attrs, rows.Err()
}

// DeleteTracks removes tracks along with their dataset links, attributes
// and block index entries.
func DeleteTracks(ctx context.Context, tx *sqlx.Tx, uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	for _, dep := range trackDependents {
		query, args, err := sqlx.In(fmt.Sprintf(`delete from %s where %s in (?)`, dep.table, dep.column), uuids)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("delete from %s: %w", dep.table, err)
		}
	}
	return nil
}

// RegisterTrack inserts a track, links it to the dataset and stores its
// attributes. A blank UUID gets a fresh one; the stored track is returned.
func RegisterTrack(ctx context.Context, tx *sqlx.Tx, datasetUUID string, track Track, attrs []Attribute) (Track, error) {
	if track.UUID == "" {
		id, err := NewUUID()
		if err != nil {
			return track, err
		}
		track.UUID = id
	}

	if _, err := tx.NamedExecContext(ctx,
		`insert into tracks (uuid, name, type, table_name) values (:uuid, :name, :type, :table_name)`, track); err != nil {
		return track, fmt.Errorf("insert track %q: %w", track.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`insert into datasets_tracks (datasets_uuid, tracks_uuid) values (?, ?)`, datasetUUID, track.UUID); err != nil {
		return track, fmt.Errorf("link track %q: %w", track.Name, err)
	}

	stmt, err := tx.PreparexContext(ctx, `insert into attributes (uuid, key, value) values (?, ?, ?)`)
	if err != nil {
		return track, err
	}
	defer stmt.Close()

	for _, a := range attrs {
		if _, err := stmt.ExecContext(ctx, track.UUID, a.Key, a.Value); err != nil {
			return track, fmt.Errorf("attribute %s of %q: %w", a.Key, track.Name, err)
		}
	}
	return track, nil
}
