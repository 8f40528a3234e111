// Package export writes match results to an Excel workbook.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"naukri/matcher-service/internal/matcher"
	"naukri/matcher-service/internal/model"
)

const (
	MatchesSheet = "Matches"
	SummarySheet = "Summary"

	// ClosingSoonDays is the days-left threshold counted as closing soon.
	ClosingSoonDays = 7
)

var matchHeaders = []string{
	"Job", "Category", "State", "Qualification", "Age Range",
	"Competition", "Last Date", "Days Left", "Apply Link",
}

// WriteWorkbook saves results to path and returns the path written. A missing
// .xlsx suffix is added.
func WriteWorkbook(results []matcher.Result, path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MatchesSheet); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return "", err
	}

	if err := writeMatches(f, results); err != nil {
		return "", fmt.Errorf("matches sheet: %w", err)
	}
	if err := writeSummary(f, results, time.Now()); err != nil {
		return "", fmt.Errorf("summary sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

// closingSoon reports a dated posting within ClosingSoonDays of its last date.
func closingSoon(r matcher.Result) bool {
	return !r.Job.Deadline.IsZero() && r.DaysLeft <= ClosingSoonDays
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func writeMatches(f *excelize.File, results []matcher.Result) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	// Postings closing soon are highlighted.
	urgent, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC7CE"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	for col, h := range matchHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(MatchesSheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(matchHeaders), 1)
	if err := f.SetCellStyle(MatchesSheet, "A1", last, style); err != nil {
		return err
	}
	_ = f.SetColWidth(MatchesSheet, "A", "A", 36)
	_ = f.SetColWidth(MatchesSheet, "B", "G", 16)
	_ = f.SetColWidth(MatchesSheet, "I", "I", 40)

	for i, r := range results {
		row := i + 2
		deadline := ""
		if !r.Job.Deadline.IsZero() {
			deadline = r.Job.Deadline.Format("02 Jan 2006")
		}
		values := []any{
			r.Job.Name,
			string(r.Tag),
			r.Job.State,
			string(r.Job.Qualification),
			fmt.Sprintf("%d-%d", r.Job.MinAge, r.Job.MaxAge),
			string(r.Job.CompetitionLevel),
			deadline,
			r.DaysLeft,
			r.Job.ApplyLink,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(MatchesSheet, cell, v); err != nil {
				return err
			}
		}
		if r.Job.ApplyLink != "" {
			cell, _ := excelize.CoordinatesToCellName(len(values), row)
			_ = f.SetCellHyperLink(MatchesSheet, cell, r.Job.ApplyLink, "External")
		}
		if closingSoon(r) {
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			_ = f.SetCellStyle(MatchesSheet, fmt.Sprintf("A%d", row), end, urgent)
		}
	}

	if len(results) > 0 {
		end, _ := excelize.CoordinatesToCellName(len(matchHeaders), len(results)+1)
		if err := f.AutoFilter(MatchesSheet, "A1:"+end, nil); err != nil {
			return err
		}
	}
	return f.SetPanes(MatchesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeSummary(f *excelize.File, results []matcher.Result, generated time.Time) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	_ = f.SetColWidth(SummarySheet, "A", "A", 24)
	_ = f.SetColWidth(SummarySheet, "B", "B", 20)

	counts := make(map[model.CategoryTag]int)
	closing := 0
	for _, r := range results {
		counts[r.Tag]++
		if closingSoon(r) {
			closing++
		}
	}

	rows := [][]any{
		{"Eligible Jobs Report", ""},
		{"Generated", generated.Format("2006-01-02 15:04")},
		{"Total Matches", len(results)},
		{fmt.Sprintf("Closing within %d days", ClosingSoonDays), closing},
		{},
		{"Category", "Matches"},
	}
	for _, tag := range model.CategoryTags {
		rows = append(rows, []any{string(tag), counts[tag]})
	}

	for i, vals := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if len(vals) == 0 {
			continue
		}
		if err := f.SetSheetRow(SummarySheet, cell, &vals); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", style); err != nil {
		return err
	}
	return f.SetCellStyle(SummarySheet, "A6", "B6", style)
}
