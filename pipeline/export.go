package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	tss "github.com/pbielenia/tss-calculator"
)

// writeArtifacts writes the ingested power series and a machine-readable
// summary next to the printed report.
func writeArtifacts(res *Result, series tss.PowerSeries, opts Options) error {
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "csv"
	}

	seriesPath := filepath.Join(opts.OutDir, "power_series."+format)
	switch format {
	case "csv":
		if err := writeSeriesCSV(seriesPath, series); err != nil {
			return fmt.Errorf("write power series csv: %w", err)
		}
	case "parquet":
		if err := writeSeriesParquet(seriesPath, series); err != nil {
			return fmt.Errorf("write power series parquet: %w", err)
		}
	}
	res.SeriesPath = seriesPath

	summaryPath := filepath.Join(opts.OutDir, "summary.json")
	if err := writeJSON(summaryPath, res.Report); err != nil {
		return fmt.Errorf("write summary.json: %w", err)
	}
	res.SummaryPath = summaryPath

	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeriesCSV(path string, series tss.PowerSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"elapsed_s", "power_w"}); err != nil {
		return err
	}
	for i, p := range series {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type seriesParquetRow struct {
	ElapsedS int64   `parquet:"name=elapsed_s, type=INT64"`
	PowerW   float64 `parquet:"name=power_w, type=DOUBLE"`
}

func writeSeriesParquet(path string, series tss.PowerSeries) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(seriesParquetRow), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for i, p := range series {
		row := seriesParquetRow{ElapsedS: int64(i), PowerW: p}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}
