package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

func readCSV(ctx context.Context, body io.Reader) ([]domain.VerseRow, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.WrapError(domain.ErrInvalidInput, "verse table header", fmt.Errorf("empty file"))
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.VerseRow, 0, 256)
	for rowNum := 2; ; rowNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNum, err)
		}
		row, ok, err := parseRow(idx, record, rowNum)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
