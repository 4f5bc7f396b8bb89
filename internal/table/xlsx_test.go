package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX_PreservesCellTyping(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "id")
		f.SetCellValue("Sheet1", "B1", "name")
		f.SetCellValue("Sheet1", "C1", "score")
		f.SetCellValue("Sheet1", "D1", "active")

		f.SetCellValue("Sheet1", "A2", 1)
		f.SetCellValue("Sheet1", "B2", "Alice")
		f.SetCellValue("Sheet1", "C2", 3.5)
		f.SetCellBool("Sheet1", "D2", true)

		f.SetCellValue("Sheet1", "A3", 2)
		// B3 left blank.
		f.SetCellValue("Sheet1", "C3", 4.0)
		f.SetCellBool("Sheet1", "D3", false)
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := tbl.RowCount(); got != 2 {
		t.Fatalf("RowCount() = %d, want 2", got)
	}

	id, _ := tbl.Column("id")
	if id.Cells[0].Kind != KindInt || id.Cells[0].Int != 1 {
		t.Errorf("id row 0 = %+v, want int 1", id.Cells[0])
	}

	name, _ := tbl.Column("name")
	if name.Cells[0].Kind != KindText || name.Cells[0].Text != "Alice" {
		t.Errorf("name row 0 = %+v, want text Alice", name.Cells[0])
	}
	if !name.Cells[1].IsNull() {
		t.Errorf("name row 1 = %+v, want null", name.Cells[1])
	}

	score, _ := tbl.Column("score")
	if score.Cells[0].Kind != KindFloat || score.Cells[0].Float != 3.5 {
		t.Errorf("score row 0 = %+v, want float 3.5", score.Cells[0])
	}

	active, _ := tbl.Column("active")
	if active.Cells[0].Kind != KindBool || !active.Cells[0].Bool {
		t.Errorf("active row 0 = %+v, want bool true", active.Cells[0])
	}
	if active.Cells[1].Bool {
		t.Error("active row 1 = true, want false")
	}
}

func TestLoadXLSX_NumericLookingStringStaysText(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "code")
		f.SetCellStr("Sheet1", "A2", "30")
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	col, _ := tbl.Column("code")
	if col.Cells[0].Kind != KindText {
		t.Errorf("cell kind = %v, want %v", col.Cells[0].Kind, KindText)
	}
	if col.Cells[0].Text != "30" {
		t.Errorf("cell text = %q, want %q", col.Cells[0].Text, "30")
	}
}

func TestLoadXLSX_EmptyStringCellStaysText(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "name")
		f.SetCellValue("Sheet1", "B1", "age")
		f.SetCellStr("Sheet1", "A2", "")
		f.SetCellValue("Sheet1", "B2", 30)
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	col, _ := tbl.Column("name")
	if col.Cells[0].Kind != KindText {
		t.Errorf("empty-string cell kind = %v, want %v", col.Cells[0].Kind, KindText)
	}
}

func TestLoadXLSX_EmptySheetIsZeroColumnTable(t *testing.T) {
	path := writeTempXLSX(t, func(f *excelize.File) {})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := tbl.ColumnCount(); got != 0 {
		t.Errorf("ColumnCount() = %d, want 0", got)
	}
	if got := tbl.RowCount(); got != 0 {
		t.Errorf("RowCount() = %d, want 0", got)
	}
}

func TestLoadXLSX_GarbageContentIsFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Load(path)
	assertFormatError(t, err)
}
