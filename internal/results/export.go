package results

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Results"

// WriteXLSX renders records as a spreadsheet for the admin console download.
func WriteXLSX(w io.Writer, recs []Record) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"Finished", "Bank", "User", "Mode", "Raw Score", "Attempted", "Correct", "Accuracy %", "Finish Reason"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}
	for row, r := range recs {
		values := []interface{}{
			time.Unix(r.FinishedAt, 0).UTC().Format(time.RFC3339),
			r.BankID,
			r.UserID,
			r.Mode,
			r.RawScore,
			r.Attempted,
			r.CorrectCount,
			r.AccuracyPercent,
			r.FinishReason,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
