package tabular

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

func readXLSX(ctx context.Context, body io.Reader) ([]domain.VerseRow, error) {
	book, err := excelize.OpenReader(body)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "open xlsx", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "verse table header", fmt.Errorf("workbook has no sheets"))
	}

	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "verse table header", fmt.Errorf("empty file"))
	}

	idx, err := indexColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]domain.VerseRow, 0, len(records)-1)
	for i, record := range records[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, ok, err := parseRow(idx, record, i+2)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
