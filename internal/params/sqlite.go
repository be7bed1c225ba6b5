package params

import (
	"database/sql"
	"fmt"
	"regexp"

	"fortio.org/safecast"
	_ "modernc.org/sqlite"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore reads raw definition payloads from a cache dump table
// with the columns (id INTEGER, data BLOB).
type SQLiteStore struct {
	db    *sql.DB
	table string
}

// OpenSQLite opens the dump at path. table defaults to "params".
func OpenSQLite(path, table string) (*SQLiteStore, error) {
	if table == "" {
		table = "params"
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &SQLiteStore{db: db, table: table}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Records() ([]Record, error) {
	rows, err := s.db.Query("SELECT id, data FROM " + s.table + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rawID int64
		var data []byte
		if err := rows.Scan(&rawID, &data); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.table, err)
		}
		id, err := safecast.Conv[int](rawID)
		if err != nil {
			return nil, fmt.Errorf("param id %d: %w", rawID, err)
		}
		rec, err := Decode(id, data)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.table, err)
	}
	return out, nil
}
