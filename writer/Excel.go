package writer

import (
	"context"
	"fmt"
	"io"
	"os"

	"province-exporter/model"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Provinces"

var sheetHeader = []interface{}{"province_id", "province_name", "district"}

// Excel writes one row per district. A province without districts still
// gets one row with an empty district cell.
type Excel struct {
	Path string
	Perm os.FileMode
}

func NewExcel(path string) *Excel {
	return &Excel{Path: path, Perm: 0o644}
}

func (w *Excel) Name() string {
	return "xlsx"
}

func (w *Excel) Target() string {
	return w.Path
}

func (w *Excel) Write(ctx context.Context, records []model.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	row := 1
	if err := setRow(f, row, sheetHeader); err != nil {
		return err
	}
	for _, record := range records {
		id := record.ProvinceId.String()
		if len(record.Districts) == 0 {
			row++
			if err := setRow(f, row, []interface{}{id, record.ProvinceName, ""}); err != nil {
				return err
			}
			continue
		}
		for _, district := range record.Districts {
			row++
			if err := setRow(f, row, []interface{}{id, record.ProvinceName, district}); err != nil {
				return err
			}
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	return replaceFile(w.Path, w.Perm, func(out io.Writer) error {
		if _, err := f.WriteTo(out); err != nil {
			return fmt.Errorf("unable to write workbook: %w", err)
		}
		return nil
	})
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}
