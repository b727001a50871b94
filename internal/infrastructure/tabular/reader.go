// Package tabular parses uploaded verse tables (CSV or XLSX) into rows.
//
// A table must carry the columns sura_index, verse_number and text;
// sura_title and sura_subtitle are optional. Header names are matched
// case-insensitively.
package tabular

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

const (
	colSurah         = "sura_index"
	colSurahTitle    = "sura_title"
	colSurahSubtitle = "sura_subtitle"
	colVerseNumber   = "verse_number"
	colText          = "text"
)

// Reader dispatches to the CSV or XLSX parser based on the source
// filename and MIME type.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Read(ctx context.Context, src *domain.CorpusSource, body io.Reader) ([]domain.VerseRow, error) {
	if src == nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read verse table", fmt.Errorf("nil source"))
	}
	if isExcel(src) {
		return readXLSX(ctx, body)
	}
	return readCSV(ctx, body)
}

func isExcel(src *domain.CorpusSource) bool {
	ext := strings.ToLower(filepath.Ext(src.Filename))
	if ext == ".xlsx" || ext == ".xlsm" {
		return true
	}
	mime := strings.ToLower(src.MimeType)
	return strings.Contains(mime, "spreadsheet") || strings.Contains(mime, "ms-excel")
}

// columnIndex maps the header row to column positions.
type columnIndex struct {
	surah         int
	surahTitle    int
	surahSubtitle int
	verseNumber   int
	text          int
}

func indexColumns(header []string) (columnIndex, error) {
	idx := columnIndex{surah: -1, surahTitle: -1, surahSubtitle: -1, verseNumber: -1, text: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colSurah:
			idx.surah = i
		case colSurahTitle:
			idx.surahTitle = i
		case colSurahSubtitle:
			idx.surahSubtitle = i
		case colVerseNumber:
			idx.verseNumber = i
		case colText:
			idx.text = i
		}
	}

	missing := make([]string, 0, 3)
	if idx.surah < 0 {
		missing = append(missing, colSurah)
	}
	if idx.verseNumber < 0 {
		missing = append(missing, colVerseNumber)
	}
	if idx.text < 0 {
		missing = append(missing, colText)
	}
	if len(missing) > 0 {
		return idx, domain.WrapError(domain.ErrInvalidInput, "verse table header",
			fmt.Errorf("missing columns: %s", strings.Join(missing, ", ")))
	}
	return idx, nil
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(idx columnIndex, record []string, rowNum int) (domain.VerseRow, bool, error) {
	text := cell(record, idx.text)
	if text == "" {
		return domain.VerseRow{}, false, nil
	}

	surah, err := strconv.Atoi(cell(record, idx.surah))
	if err != nil || surah < 1 || surah > 114 {
		return domain.VerseRow{}, false, domain.WrapError(domain.ErrInvalidInput, "verse table row",
			fmt.Errorf("row %d: bad sura_index %q", rowNum, cell(record, idx.surah)))
	}
	verse, err := strconv.Atoi(cell(record, idx.verseNumber))
	if err != nil || verse < 1 {
		return domain.VerseRow{}, false, domain.WrapError(domain.ErrInvalidInput, "verse table row",
			fmt.Errorf("row %d: bad verse_number %q", rowNum, cell(record, idx.verseNumber)))
	}

	return domain.VerseRow{
		Surah:         surah,
		SurahTitle:    cell(record, idx.surahTitle),
		SurahSubtitle: cell(record, idx.surahSubtitle),
		VerseNumber:   verse,
		Text:          text,
	}, true, nil
}
