package writer

import (
	"context"
	"fmt"

	"province-exporter/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx.Tx used to store records.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

const upsertProvince = `insert into province (code, name) values ($1, $2)
	on conflict (code) do update set name = excluded.name, updated_at = now()
	returning id`

const deleteDistricts = `delete from district where province_id = $1`

const insertDistrict = `insert into district (province_id, position, name) values ($1, $2, $3)`

// Postgres stores the export in the province/district tables in one
// transaction. District rows of every exported province are replaced.
type Postgres struct {
	db TxBeginner
}

func NewPostgres(db TxBeginner) *Postgres {
	return &Postgres{db: db}
}

func (w *Postgres) Name() string {
	return "postgres"
}

func (w *Postgres) Target() string {
	return "province,district"
}

func (w *Postgres) Write(ctx context.Context, records []model.Record) error {
	return pgx.BeginFunc(ctx, w.db, func(tx pgx.Tx) error {
		return SaveRecords(ctx, tx, records)
	})
}

func SaveRecords(ctx context.Context, db DBTX, records []model.Record) error {
	for _, record := range records {
		var provinceId int
		if err := db.QueryRow(ctx, upsertProvince, record.ProvinceId.String(), record.ProvinceName).Scan(&provinceId); err != nil {
			return fmt.Errorf("unable to save province %s: %w", record.ProvinceId, err)
		}
		if _, err := db.Exec(ctx, deleteDistricts, provinceId); err != nil {
			return fmt.Errorf("unable to clear districts of province %s: %w", record.ProvinceId, err)
		}
		for i, district := range record.Districts {
			if _, err := db.Exec(ctx, insertDistrict, provinceId, i, district); err != nil {
				return fmt.Errorf("unable to save district %q of province %s: %w", district, record.ProvinceId, err)
			}
		}
	}
	return nil
}
