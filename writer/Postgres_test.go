package writer

import (
	"context"
	"errors"
	"testing"

	"province-exporter/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	sql  string
	args []any
}

type fakeRow struct {
	id  int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.id
	return nil
}

type fakeDB struct {
	calls   []call
	nextId  int
	execErr error
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.calls = append(db.calls, call{sql: sql, args: args})
	if db.execErr != nil {
		return pgconn.CommandTag{}, db.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.calls = append(db.calls, call{sql: sql, args: args})
	db.nextId++
	return fakeRow{id: db.nextId}
}

func TestSaveRecordsOrder(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, SaveRecords(context.Background(), db, sampleRecords()))

	expected := []call{
		{sql: upsertProvince, args: []any{"01", "Thành phố Hà Nội"}},
		{sql: deleteDistricts, args: []any{1}},
		{sql: insertDistrict, args: []any{1, 0, "Quận Ba Đình"}},
		{sql: insertDistrict, args: []any{1, 1, "Quận Hoàn Kiếm"}},
		{sql: upsertProvince, args: []any{"02", "Tỉnh Hà Giang & <Test>"}},
		{sql: deleteDistricts, args: []any{2}},
	}
	assert.Equal(t, expected, db.calls)
}

func TestSaveRecordsStopsOnError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("connection reset")}
	err := SaveRecords(context.Background(), db, sampleRecords())
	assert.ErrorContains(t, err, "connection reset")
	assert.Len(t, db.calls, 2)
}

func TestSaveRecordsEmpty(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, SaveRecords(context.Background(), db, []model.Record{}))
	assert.Empty(t, db.calls)
}
