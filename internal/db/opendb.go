//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/str"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
	"regexp"
	"slices"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// the five database/sql drivers register themselves as:
//   "sqlite" (modernc; pure go), "sqlite3" (mattn; cgo), "pgx", "postgres", "mysql"
//

var (
	Drivers = []string{"sqlite", "sqlite3", "pgx", "postgres", "mysql"}
	isident = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Open - get a live handle on the store; the caller owns Close()
func Open(ctx context.Context, sc str.StoreConfig) (*sql.DB, error) {
	const (
		FAIL1 = "unknown driver '%s'"
		MSG1  = "Open() connected via '%s'"
	)

	if !slices.Contains(Drivers, sc.Driver) {
		return nil, &str.DataAccessError{Op: "open", Err: fmt.Errorf(FAIL1, sc.Driver)}
	}

	dbh, err := sql.Open(sc.Driver, sc.DSN)
	if err != nil {
		return nil, &str.DataAccessError{Op: "open", Err: err}
	}

	// sql.Open() is lazy: make sure the store is really there
	if err = dbh.PingContext(ctx); err != nil {
		_ = dbh.Close()
		return nil, &str.DataAccessError{Op: "ping", Err: err}
	}

	Msg.PEEK(fmt.Sprintf(MSG1, sc.Driver))
	return dbh, nil
}

// quoteident - validate a table or column name and quote it for the driver in use
func quoteident(driver string, name string) (string, error) {
	if !isident.MatchString(name) {
		return "", fmt.Errorf("'%s' is not a valid identifier", name)
	}
	if driver == "mysql" {
		return "`" + name + "`", nil
	}
	return `"` + name + `"`, nil
}
