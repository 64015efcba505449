package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"caseboard/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// SheetClients names the sheet written by ExportClientsXLSX
	SheetClients = "Clients"
	// SheetCases names the sheet written by ExportCasesXLSX
	SheetCases = "Cases"

	// XLSXContentType is the media type of exported workbooks
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var clientHeaders = []string{"ID", "Name", "Email", "Phone", "Address", "Type", "Date Added"}

var caseHeaders = []string{
	"ID", "Title", "Case Number", "Client", "Status", "Type", "Date Opened",
	"Judge", "Court", "Filing Date", "Hearing Date", "Attorney", "Description",
}

// ImportResult contains the summary of the import process
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors"`
}

// ExportClientsXLSX writes clients to a single-sheet workbook
func ExportClientsXLSX(clients []models.Client) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []interface{}{c.ID, c.Name, c.Email, c.Phone, c.Address, c.Type, c.DateAdded})
	}
	return writeSheet(SheetClients, clientHeaders, rows)
}

// ExportCasesXLSX writes cases to a single-sheet workbook
func ExportCasesXLSX(cases []models.Case) (*bytes.Buffer, error) {
	rows := make([][]interface{}, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, []interface{}{
			c.ID, c.Title, c.CaseNumber, c.Client, c.Status, c.Type, c.DateOpened,
			c.Judge, c.Court, c.FilingDate, c.HearingDate, c.Attorney, c.Description,
		})
	}
	return writeSheet(SheetCases, caseHeaders, rows)
}

func writeSheet(sheet string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "A", lastCol, 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// Import reads clients from the first sheet of a workbook laid out like
// ExportClientsXLSX. The ID column is ignored; every valid row becomes a new
// client and invalid rows are reported by row number.
func (s *ClientService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if err := s.latency.Wait(ctx); err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue // header
		}
		result.TotalProcessed++

		client := NormalizeClient(models.Client{
			Name:      cellAt(row, 1),
			Email:     cellAt(row, 2),
			Phone:     cellAt(row, 3),
			Address:   cellAt(row, 4),
			Type:      cellAt(row, 5),
			DateAdded: cellAt(row, 6),
		})
		if client.Type == "" {
			client.Type = models.ClientTypeIndividual
		}
		if client.DateAdded == "" {
			client.DateAdded = FormatDate(s.now())
		}
		if err := ValidateClient(client); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		s.store.Clients.Insert(client)
		result.SuccessCount++
	}

	s.logger.Info("clients imported",
		zap.Int("processed", result.TotalProcessed),
		zap.Int("imported", result.SuccessCount),
		zap.Int("failed", result.FailedCount))
	return result, nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
