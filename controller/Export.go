package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"province-exporter/model"
	"province-exporter/utils"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/phuslu/log"
)

type Source interface {
	Provinces(ctx context.Context) ([]model.Province, error)
	Districts(ctx context.Context, provinceId model.LocationID) ([]model.District, error)
}

type Sink interface {
	Name() string
	Target() string
	Write(ctx context.Context, records []model.Record) error
}

type Exporter struct {
	Source    Source
	Sinks     []Sink
	Localizer *i18n.Localizer
	Stdout    io.Writer
	Logger    *log.Logger
}

// Fetch collects every province with its districts, one request at a time.
func (e *Exporter) Fetch(ctx context.Context) ([]model.Record, error) {
	provinces, err := e.Source.Provinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to list provinces: %w", err)
	}
	e.logger().Info().Int("Provinces", len(provinces)).Msg("province list fetched")

	records := make([]model.Record, 0, len(provinces))
	for _, p := range provinces {
		districts, err := e.Source.Districts(ctx, p.Id)
		if err != nil {
			return nil, fmt.Errorf("unable to list districts of province %s: %w", p.Id, err)
		}
		e.logger().Debug().Str("ProvinceId", p.Id.String()).Str("ProvinceName", *p.Name).Int("Districts", len(districts)).Msg("districts fetched")
		records = append(records, BuildRecord(p, districts))
	}
	return records, nil
}

// Run fetches everything first and only then hands the records to the
// sinks, so a failed fetch leaves existing outputs untouched.
func (e *Exporter) Run(ctx context.Context) ([]model.Record, error) {
	started := time.Now()
	records, err := e.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	for _, sink := range e.Sinks {
		if err := sink.Write(ctx, records); err != nil {
			return nil, fmt.Errorf("%s export to %s failed: %w", sink.Name(), sink.Target(), err)
		}
		e.logger().Info().Str("Sink", sink.Name()).Str("Target", sink.Target()).Msg("export written")
	}
	e.logger().Info().Int("Records", len(records)).Dur("Elapsed", time.Since(started)).Msg("export completed")

	if err := e.announce(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *Exporter) announce() error {
	if e.Stdout == nil || len(e.Sinks) == 0 {
		return nil
	}
	path := e.Sinks[0].Target()
	message := fmt.Sprintf("Created %s", path)
	if e.Localizer != nil {
		localized, err := utils.Localize(e.Localizer, "ExportCompleted", map[string]interface{}{"Path": path})
		if err != nil {
			e.logger().Warn().Err(err).Msg("completion message not translated")
		} else {
			message = localized
		}
	}
	_, err := fmt.Fprintln(e.Stdout, message)
	return err
}

func (e *Exporter) logger() *log.Logger {
	if e.Logger == nil {
		return &log.DefaultLogger
	}
	return e.Logger
}
