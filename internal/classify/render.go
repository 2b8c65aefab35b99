package classify

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var reportHeaders = []string{"class_description", "score", "catdog", "file_name"}

func (r Row) strings() []string {
	return []string{r.Class, fmt.Sprintf("%.4f", r.Score), r.CatDog, r.File}
}

// RenderTable formats the rows as a bordered terminal table.
func RenderTable(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(reportHeaders...)

	for _, r := range rows {
		t.Row(r.strings()...)
	}

	return t.String()
}

// RenderCSV formats the rows as CSV with a header line.
func RenderCSV(rows []Row) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(reportHeaders); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.strings()); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	return sb.String(), nil
}
