//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"strconv"
	"strings"
)

// LoadTrainTest - open the store once, read the train and then the test table in full, close the store
func LoadTrainTest(ctx context.Context, sc str.StoreConfig) (str.Table, str.Table, error) {
	const (
		MSG1 = "LoadTrainTest() read %d rows from '%s'"
	)

	var train, test str.Table

	ctx, cancel := context.WithTimeout(ctx, vv.DBQUERYTIMEOUT)
	defer cancel()

	dbh, err := Open(ctx, sc)
	if err != nil {
		return train, test, err
	}
	defer func() {
		if ce := dbh.Close(); ce != nil {
			Msg.WARN(fmt.Sprintf("LoadTrainTest() failed to close the store: %s", ce.Error()))
		}
	}()

	train, err = ReadTable(ctx, dbh, sc, sc.TrainTable)
	if err != nil {
		return train, test, err
	}
	Msg.FYI(Msg.Sprintf(MSG1, train.Len(), train.Name))

	test, err = ReadTable(ctx, dbh, sc, sc.TestTable)
	if err != nil {
		return train, test, err
	}
	Msg.FYI(Msg.Sprintf(MSG1, test.Len(), test.Name))

	return train, test, nil
}

// ReadTable - "SELECT * FROM table" into a str.Table; the positional index column is dropped
func ReadTable(ctx context.Context, dbh *sql.DB, sc str.StoreConfig, table string) (str.Table, error) {
	const (
		QTB   = `SELECT * FROM %s`
		FAIL1 = "label column '%s' not found"
		FAIL2 = "row %d: %w"
	)

	t := str.Table{Name: table}

	qt, err := quoteident(sc.Driver, table)
	if err != nil {
		return t, &str.DataAccessError{Op: "read", Table: table, Err: err}
	}

	rows, err := dbh.QueryContext(ctx, fmt.Sprintf(QTB, qt))
	if err != nil {
		return t, &str.DataAccessError{Op: "read", Table: table, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return t, &str.DataAccessError{Op: "read", Table: table, Err: err}
	}

	cm := mapcolumns(cols, sc)
	if cm.label < 0 {
		return t, &str.DataAccessError{Op: "read", Table: table, Err: fmt.Errorf(FAIL1, sc.LabelColumn)}
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return t, &str.DataAccessError{Op: "scan", Table: table, Err: err}
		}

		d := str.Document{ID: len(t.Docs)}
		d.Category, err = asint(vals[cm.label])
		if err != nil {
			return t, &str.DataAccessError{Op: "scan", Table: table, Err: fmt.Errorf(FAIL2, d.ID, err)}
		}
		if cm.text >= 0 {
			d.Content = astext(vals[cm.text])
		}
		if cm.head >= 0 {
			d.Headline = astext(vals[cm.head])
		}
		for _, x := range cm.extra {
			if d.Extra == nil {
				d.Extra = make(map[string]string)
			}
			d.Extra[cols[x]] = astext(vals[x])
		}
		t.Docs = append(t.Docs, d)
	}

	if err = rows.Err(); err != nil {
		return t, &str.DataAccessError{Op: "read", Table: table, Err: err}
	}
	return t, nil
}

type colmap struct {
	text  int
	head  int
	label int
	extra []int
}

// mapcolumns - find the columns we know by name; the index column goes nowhere
func mapcolumns(cols []string, sc str.StoreConfig) colmap {
	cm := colmap{text: -1, head: -1, label: -1}
	for i, c := range cols {
		switch {
		case strings.EqualFold(c, sc.IndexColumn):
			// dropped
		case strings.EqualFold(c, sc.TextColumn):
			cm.text = i
		case strings.EqualFold(c, sc.HeadColumn):
			cm.head = i
		case strings.EqualFold(c, sc.LabelColumn):
			cm.label = i
		default:
			cm.extra = append(cm.extra, i)
		}
	}
	return cm
}

func astext(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// asint - drivers hand back labels as int64, float64, or bytes depending on the column affinity
func asint(v any) (int, error) {
	switch x := v.(type) {
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	case int:
		return x, nil
	case float64:
		return int(x), nil
	case []byte:
		return strconv.Atoi(strings.TrimSpace(string(x)))
	case string:
		return strconv.Atoi(strings.TrimSpace(x))
	case nil:
		return 0, fmt.Errorf("null label")
	default:
		return 0, fmt.Errorf("cannot read %T as a label", v)
	}
}
