package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/pharmasite/internal/models"
)

const contactSheet = "Messages"

var contactColumns = []string{
	"ID", "Received (UTC)", "Source", "Name", "Email", "Company", "Country",
	"Product type", "Message", "IP address", "User agent",
}

// ContactMessagesWorkbook renders messages as an XLSX workbook.
func ContactMessagesWorkbook(messages []models.ContactMessage) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", contactSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(contactSheet, "A1", &contactColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, m := range messages {
		row := []interface{}{
			m.ID.String(),
			m.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			m.Source,
			m.Name,
			m.Email,
			m.Company,
			m.Country,
			m.ProductType,
			m.Message,
			m.IPAddress,
			m.UserAgent,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(contactSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(contactSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}
	if err := f.SetColWidth(contactSheet, "D", "E", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(contactSheet, "I", "I", 60); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
