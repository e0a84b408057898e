package excel

import (
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleetcalc/domain/damage"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/errors"
	"fleetcalc/ports"
)

// ReportWriter exports analyses as .xlsx workbooks with a Summary sheet of
// per-event damage state densities and a Styles sheet with one row per style.
type ReportWriter struct {
	logger *zap.Logger
}

var _ ports.ReportSink = (*ReportWriter)(nil)

// NewReportWriter creates a workbook report writer
func NewReportWriter(logger *zap.Logger) *ReportWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportWriter{logger: logger.Named("excel")}
}

type event struct {
	name   string
	report analyzer.ActionReport
}

func events(s analyzer.ShipAnalysis) []event {
	return []event{
		{"shelling", s.Shelling},
		{"torpedo", s.Torpedo},
		{"night", s.Night},
		{"asw", s.Asw},
	}
}

// Write saves the analysis to path
func (w *ReportWriter) Write(ctx context.Context, path string, a *analyzer.FleetAnalysis) error {
	if a == nil {
		return errors.InvalidInput("analysis is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}
	if _, err := f.NewSheet(StylesSheet); err != nil {
		return errors.Wrap(err, "failed to create styles sheet")
	}

	if err := writeSummary(f, a); err != nil {
		return err
	}
	rows, err := writeStyles(f, a)
	if err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", path)
	}
	w.logger.Info("report workbook written",
		zap.String("path", path),
		zap.String("analysis_id", a.ID.String()),
		zap.Int("style_rows", rows))
	return nil
}

func writeSummary(f *excelize.File, a *analyzer.FleetAnalysis) error {
	header := []interface{}{"fleet", "ship", "state", "event", "active"}
	for _, s := range damage.States() {
		header = append(header, s.String())
	}
	if err := setRow(f, SummarySheet, 1, header); err != nil {
		return err
	}

	row := 2
	for _, ship := range a.Ships {
		for _, ev := range events(ship) {
			values := []interface{}{ship.Fleet + 1, ship.Name, ship.State.String(), ev.name, ev.report.IsActive}
			for _, s := range damage.States() {
				if ev.report.DamageStateDensity == nil {
					values = append(values, "")
					continue
				}
				values = append(values, ev.report.DamageStateDensity.Get(s))
			}
			if err := setRow(f, SummarySheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeStyles(f *excelize.File, a *analyzer.FleetAnalysis) (int, error) {
	header := make([]interface{}, len(StyleColumns))
	for i, c := range StyleColumns {
		header[i] = c
	}
	if err := setRow(f, StylesSheet, 1, header); err != nil {
		return 0, err
	}

	row := 2
	for _, ship := range a.Ships {
		for _, ev := range events(ship) {
			for _, style := range ev.report.Styles() {
				ar, _ := ev.report.Get(style)
				if err := setRow(f, StylesSheet, row, styleRow(ship, ev.name, ar)); err != nil {
					return 0, err
				}
				row++
			}
		}
	}
	return row - 2, nil
}

func styleRow(ship analyzer.ShipAnalysis, event string, ar analyzer.AttackReport) []interface{} {
	values := []interface{}{ship.Fleet + 1, ship.Name, event, string(ar.Style), cell(ar.ProcRate), ar.Approximate}
	if ar.AttackPower != nil {
		values = append(values, ar.AttackPower.Normal, ar.AttackPower.Critical)
	} else {
		values = append(values, "", "")
	}
	if ar.HitRate != nil {
		values = append(values, ar.HitRate.Total, ar.HitRate.Critical)
	} else {
		values = append(values, "", "")
	}
	if ar.Damage != nil {
		values = append(values, ar.Damage.ExpectedDamage, ar.Damage.SinkRate)
	} else {
		values = append(values, "", "")
	}
	return values
}

func cell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	ref, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "invalid cell reference")
	}
	if err := f.SetSheetRow(sheet, ref, &values); err != nil {
		return errors.Wrapf(err, "failed to write %s row %d", sheet, row)
	}
	return nil
}
