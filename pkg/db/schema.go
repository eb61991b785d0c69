package db

// Tables the genome browser reads. Feature tables are created per import
// (see CreateFeatureTable).
var schema = []string{
	`create table if not exists datasets (
		uuid text primary key not null,
		name text not null);`,
	`create table if not exists sequences (
		id integer primary key autoincrement not null,
		uuid text not null,
		name text not null,
		length integer not null,
		topology text);`,
	`create table if not exists tracks (
		uuid text primary key not null,
		name text not null,
		type text not null,
		table_name text not null);`,
	`create table if not exists datasets_tracks (
		datasets_uuid text not null,
		tracks_uuid text not null);`,
	`create table if not exists attributes (
		uuid text not null,
		key text not null,
		value);`,
	`create table if not exists block_index (
		tracks_uuid text not null,
		sequences_id integer not null,
		seqId text not null,
		strand text not null,
		start integer not null,
		"end" integer not null,
		length integer not null,
		table_name text not null,
		first_row_id integer not null,
		last_row_id integer not null);`,
	basesTable,
}

const basesTable = `create table if not exists bases (
	sequence_id int,
	start int,
	"end" int,
	sequence text);`
