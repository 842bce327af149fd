// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tile-sync/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderStatusTable(w io.Writer, statuses []models.SyncStatus) error {
	t := newTable("TILE", "X", "Y", "POI", "REVIEW")
	for _, s := range statuses {
		t.Row(
			s.Tile().String(),
			strconv.Itoa(int(s.TileX)),
			strconv.Itoa(int(s.TileY)),
			s.PoiUpdateType.String(),
			s.ReviewUpdateType.String(),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderReport(w io.Writer, report models.ValidationReport) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SYNC STATUS REPORT"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %d  Valid: %d  Rejected: %d  Distinct tiles: %d\n",
		report.Total, report.Valid, len(report.Failures), report.Tiles)

	counts := newTable("UPDATE TYPE", "POI", "REVIEW")
	for _, v := range models.SyncStatusTypes() {
		counts.Row(v.String(), strconv.Itoa(report.PoiUpdateTypes[v]), strconv.Itoa(report.ReviewUpdateTypes[v]))
	}
	b.WriteString(counts.Render())
	b.WriteString("\n")

	if len(report.Failures) > 0 {
		b.WriteString(errorStyle.Render("Rejected elements:"))
		b.WriteString("\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&b, "  [%d] %s\n", f.Index, f.Message)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
