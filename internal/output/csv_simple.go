package output

import (
	"bytes"
	"encoding/csv"

	"github.com/finfree/independence-calculator/internal/domain"
)

// CSVProjectionExporter writes the projection series as CSV (one row per period).
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string { return "csv" }

func (c CSVProjectionExporter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Year", "NetWorth", "PassiveIncome", "LifestyleCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, point := range result.NetWorthSeries {
		income := ""
		target := ""
		if i < len(result.PassiveIncomeSeries) {
			income = result.PassiveIncomeSeries[i].TrackedValue.StringFixed(2)
			target = result.PassiveIncomeSeries[i].TargetValue.StringFixed(2)
		}
		row := []string{
			intToString(point.PeriodIndex),
			intToString(result.AsOfYear + point.PeriodIndex),
			point.TrackedValue.StringFixed(2),
			income,
			target,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
