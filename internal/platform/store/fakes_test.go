package store

import (
	"context"
	"errors"
	"reflect"

	chx "baseconv/internal/platform/store/ch"
)

type cmdTag int64

func (c cmdTag) String() string      { return "ROWS" }
func (c cmdTag) RowsAffected() int64 { return int64(c) }

// memRows serves data row by row, converting values into the scan targets
type memRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newMemRows(cols []string, data ...[]any) *memRows {
	return &memRows{cols: cols, data: data, idx: -1}
}

func (r *memRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx < len(r.data)
}

func (r *memRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of range")
	}
	return assignAll(r.data[r.idx], dest)
}

func (r *memRows) Err() error        { return r.err }
func (r *memRows) Close()            { r.closed = true }
func (r *memRows) Columns() []string { return r.cols }

func assignAll(src []any, dest []any) error {
	if len(src) != len(dest) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return errors.New("dest not pointer")
		}
		sv := reflect.ValueOf(src[i])
		switch {
		case !sv.IsValid():
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
		case sv.Type().AssignableTo(dv.Elem().Type()):
			dv.Elem().Set(sv)
		case sv.Type().ConvertibleTo(dv.Elem().Type()):
			dv.Elem().Set(sv.Convert(dv.Elem().Type()))
		default:
			return errors.New("type mismatch")
		}
	}
	return nil
}

type memRow struct {
	vals []any
	err  error
}

func (r memRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(r.vals, dest)
}

// fakeQuerier is a scripted RowQuerier
type fakeQuerier struct {
	execSQL  string
	execArgs []any
	execTag  CommandTag
	execErr  error

	rows     Rows
	queryErr error

	row Row
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.execSQL, f.execArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (Rows, error) {
	return f.rows, f.queryErr
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) Row { return f.row }

// fakeTx adds Tx and optionally Ping to fakeQuerier
type fakeTx struct {
	fakeQuerier
}

func (f *fakeTx) Tx(ctx context.Context, fn func(q RowQuerier) error) error { return fn(f) }

type fakeTxPing struct {
	fakeTx
	err    error
	closed bool
}

func (f *fakeTxPing) Ping(context.Context) error { return f.err }
func (f *fakeTxPing) Close() error               { f.closed = true; return nil }

// fakeCH records calls made through the store.Clickhouse seam
type fakeCH struct {
	table    string
	inserted [][]any
	execSQL  string
	rows     chx.Rows
	pingErr  error
	pings    int
	closed   bool
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table = table
	f.inserted = append(f.inserted, rows...)
	return nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execSQL = sql
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (chx.Rows, error) {
	if f.rows == nil {
		return nil, errors.New("no rows")
	}
	return f.rows, nil
}

func (f *fakeCH) Ping(context.Context) error { f.pings++; return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

// chMemRows adapts memRows to the ch.Rows shape
type chMemRows struct{ *memRows }

func (r chMemRows) Close() error { r.memRows.Close(); return nil }
