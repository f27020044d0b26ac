package excel

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"starter-pack-quiz/internal/domain"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet both the shared workbook and the
// export use.
const SheetName = "Responses"

// headerFill matches the original export theme: bold white on red.
const headerFillColor = "E74C3C"

// Store maintains the shared cumulative workbook: one row appended per
// submission via a full read-modify-rewrite. A mutex serializes appends
// within this process; an external viewer holding the file locked still
// fails the rewrite, which callers must treat as non-fatal.
type Store struct {
	mu      sync.Mutex
	path    string
	backups *BackupManager
}

// NewStore creates a workbook store writing to path. backups may be nil
// to disable pre-rewrite backups.
func NewStore(path string, backups *BackupManager) *Store {
	return &Store{path: path, backups: backups}
}

// Path returns the workbook location.
func (s *Store) Path() string {
	return s.path
}

// Append adds one response row, initializing the workbook with the fixed
// header schema when it does not exist yet.
func (s *Store) Append(resp *domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f *excelize.File
	if _, err := os.Stat(s.path); err == nil {
		f, err = excelize.OpenFile(s.path)
		if err != nil {
			return fmt.Errorf("failed to open workbook: %w", err)
		}
	}

	sheetIdx := -1
	if f != nil {
		sheetIdx, _ = f.GetSheetIndex(SheetName)
	}
	if f == nil || sheetIdx < 0 {
		if f != nil {
			f.Close()
		}
		var err error
		f, err = newWorkbook()
		if err != nil {
			return err
		}
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("failed to read workbook rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, rowValuesPtr(resp)); err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}

	if s.backups != nil {
		// Best effort; a failed backup must not block the append.
		s.backups.Create(s.path)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// BuildWorkbook shapes a fresh export workbook from the given records.
func BuildWorkbook(responses []*domain.Response) (*excelize.File, error) {
	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	for i, resp := range responses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, rowValuesPtr(resp)); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

// BuildExport renders the export workbook to an in-memory xlsx document.
func BuildExport(responses []*domain.Response) (*bytes.Buffer, error) {
	f, err := BuildWorkbook(responses)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.WriteToBuffer()
}

// Headers returns the fixed export column schema in order.
func Headers() []string {
	headers := []string{"Session ID", "Timestamp", "Username"}
	for q := 1; q <= domain.TotalQuestions; q++ {
		headers = append(headers, fmt.Sprintf("Q%d", q))
	}
	for i := 1; i <= domain.TotalQuestions; i++ {
		headers = append(headers, fmt.Sprintf("Item %d", i))
	}
	headers = append(headers, "Result Type", "Result Name")
	for _, t := range domain.TraitOrder {
		headers = append(headers, "Score "+string(t))
	}
	return append(headers, "Suggestion", "IP Address")
}

func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		f.Close()
		return nil, err
	}

	headers := Headers()
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 18); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowHeight(SheetName, 1, 24); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func rowValuesPtr(resp *domain.Response) *[]any {
	row := make([]any, 0, len(Headers()))
	row = append(row, resp.SessionID, resp.Timestamp, resp.Username)
	for i := 0; i < domain.TotalQuestions; i++ {
		if i < len(resp.Answers) {
			row = append(row, resp.Answers[i])
		} else {
			row = append(row, "")
		}
	}
	for i := 0; i < domain.TotalQuestions; i++ {
		if i < len(resp.Items) {
			row = append(row, resp.Items[i])
		} else {
			row = append(row, "")
		}
	}
	row = append(row, resp.PersonalityType, resp.PersonalityName)
	for _, t := range domain.TraitOrder {
		row = append(row, resp.PersonalityScores.Get(t))
	}
	row = append(row, resp.Suggestion, resp.IP)
	return &row
}
