package document

import (
	"fmt"
	"io"

	"github.com/shramsetu/rozgar-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var excelColumns = []string{"Worker Name", "Job Card ID", "Project Name", "Date", "Attendance", "Marked By", "Time"}

// WriteMusterRollExcel renders the muster roll as a spreadsheet. Unlike the
// PDF, spreadsheet cells carry the full untruncated values.
func WriteMusterRollExcel(data report.MusterRollData, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Muster Roll"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", "MUSTER ROLL - ATTENDANCE REPORT")
	f.MergeCell(sheetName, "A1", "G1")
	f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	f.SetRowHeight(sheetName, 1, 25)

	f.SetCellValue(sheetName, "A3", "Project:")
	f.SetCellValue(sheetName, "B3", data.ProjectName)
	f.SetCellValue(sheetName, "A4", "Location:")
	f.SetCellValue(sheetName, "B4", data.Location)
	f.SetCellValue(sheetName, "A5", "Date:")
	f.SetCellValue(sheetName, "B5", data.Date)

	for i, col := range excelColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 7)
		f.SetCellValue(sheetName, cell, col)
	}
	f.SetCellStyle(sheetName, "A7", "G7", headerStyle)

	row := 8
	for _, r := range data.Rows {
		values := []interface{}{r.WorkerName, r.JobCardID, r.ProjectName, r.Date, r.Attendance, r.MarkedBy, r.Time}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	row += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total Workers")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), data.Summary.TotalWorkers)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Present")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), data.Summary.Present)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Absent")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), data.Summary.Absent)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Attendance Rate")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%d%%", data.Summary.AttendanceRate))

	row += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("Generated at: %s", data.GeneratedAt))

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "D", "G", 14)

	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
