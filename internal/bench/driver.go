package bench

import (
	"database/sql"
	"fmt"

	"github.com/go4sqlite/go4sqlite"
)

// benchDriver abstracts the two SQLite access paths under test behind the
// few operations the workloads need.
type benchDriver interface {
	Name() string
	// Exec runs a write statement and returns the number of affected rows.
	Exec(query string, args ...any) (int64, error)
	// CountRows runs a read statement and returns the number of rows it
	// produced, scanning each one to exhaustion.
	CountRows(query string, args ...any) (uint64, error)
	Begin() error
	Commit() error
	Close() error
}

// wrapperDriver runs the workloads through the go4sqlite wrapper. Prepared
// statements are cached per query text so repeated Execs reuse the compiled
// plan.
type wrapperDriver struct {
	conn  *go4sqlite.Connection
	stmts map[string]*go4sqlite.PreparedStatement
}

func newWrapperDriver(conn *go4sqlite.Connection) *wrapperDriver {
	return &wrapperDriver{
		conn:  conn,
		stmts: map[string]*go4sqlite.PreparedStatement{},
	}
}

func (d *wrapperDriver) Name() string { return "go4sqlite" }

func (d *wrapperDriver) stmt(query string) (*go4sqlite.PreparedStatement, error) {
	if stmt, ok := d.stmts[query]; ok {
		return stmt, nil
	}
	stmt, err := d.conn.Prepare(query, go4sqlite.PreparePersistent)
	if err != nil {
		return nil, err
	}
	d.stmts[query] = stmt
	return stmt, nil
}

func (d *wrapperDriver) Exec(query string, args ...any) (int64, error) {
	stmt, err := d.stmt(query)
	if err != nil {
		return 0, err
	}
	if _, err := stmt.Execute(args...); err != nil {
		return 0, err
	}
	return d.conn.AffectedRows(), nil
}

func (d *wrapperDriver) CountRows(query string, args ...any) (uint64, error) {
	stmt, err := d.stmt(query)
	if err != nil {
		return 0, err
	}
	rs, err := stmt.Execute(args...)
	if err != nil {
		return 0, err
	}

	var count uint64
	for {
		_, ok, err := rs.RowS()
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

func (d *wrapperDriver) Begin() error {
	_, err := d.conn.QuickQuery("BEGIN")
	return err
}

func (d *wrapperDriver) Commit() error {
	_, err := d.conn.QuickQuery("COMMIT")
	return err
}

func (d *wrapperDriver) Close() error {
	for _, stmt := range d.stmts {
		_ = stmt.Close()
	}
	return d.conn.Close()
}

// sqlDriver runs the workloads through database/sql with mattn/go-sqlite3 as
// the comparison baseline.
type sqlDriver struct {
	db *sql.DB
	tx *sql.Tx
}

func newSQLDriver(db *sql.DB) *sqlDriver {
	return &sqlDriver{db: db}
}

func (d *sqlDriver) Name() string { return "mattn/go-sqlite3" }

func (d *sqlDriver) Exec(query string, args ...any) (int64, error) {
	var res sql.Result
	var err error
	if d.tx != nil {
		res, err = d.tx.Exec(query, args...)
	} else {
		res, err = d.db.Exec(query, args...)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (d *sqlDriver) CountRows(query string, args ...any) (uint64, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return 0, err
	}

	var count uint64
	for rows.Next() {
		dests := make([]any, len(cols))
		for i := range dests {
			dests[i] = new(sql.RawBytes)
		}
		if err := rows.Scan(dests...); err != nil {
			return 0, err
		}
		count++
	}
	return count, rows.Err()
}

func (d *sqlDriver) Begin() error {
	if d.tx != nil {
		return fmt.Errorf("transaction already open")
	}
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	d.tx = tx
	return nil
}

func (d *sqlDriver) Commit() error {
	if d.tx == nil {
		return fmt.Errorf("no transaction open")
	}
	err := d.tx.Commit()
	d.tx = nil
	return err
}

func (d *sqlDriver) Close() error {
	return d.db.Close()
}
