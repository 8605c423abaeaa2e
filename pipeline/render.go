package pipeline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	tableWidth = 42
	labelWidth = 25
	valueWidth = 10
)

// renderReport prints the fixed-width two-column result table.
func renderReport(w io.Writer, r Report) error {
	rows := [][2]string{
		{"FTP", fmt.Sprintf("%d W", r.FTPWatts)},
		{"Total workout duration", fmt.Sprintf("%.0f min", r.DurationSeconds/60)},
		{strings.Repeat("-", labelWidth), strings.Repeat("-", valueWidth)},
		{"Normalized Power", fmt.Sprintf("%.0f W", r.NormalizedPower)},
		{"Intensity Factor", formatNumber(r.IntensityFactor)},
		{"Training Stress Score", formatNumber(r.TrainingStress)},
	}

	line := strings.Repeat("-", tableWidth)
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %-*s | %s |\n", labelWidth, row[0], center(row[1], valueWidth)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// formatNumber prints a value without padding it with trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
