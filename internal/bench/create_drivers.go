package bench

import (
	"database/sql"
	"fmt"
	"os"
	"path"

	"github.com/go4sqlite/go4sqlite"
	_ "github.com/mattn/go-sqlite3"
)

func createWrapperDriver(dir string) (*wrapperDriver, error) {
	dbPath := path.Join(dir, "go4sqlite", "bench.db")

	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("go4sqlite db path:", dbPath)

	conn, err := go4sqlite.Open(dbPath, go4sqlite.OpenCreateReadWrite)
	if err != nil {
		return nil, err
	}

	return newWrapperDriver(conn), nil
}

func createMattnDriver(dir string) (*sqlDriver, error) {
	dbPath := path.Join(dir, "mattn", "bench.db")

	if err := os.MkdirAll(path.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	fmt.Println("mattn/go-sqlite3 db path:", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return newSQLDriver(db), nil
}
