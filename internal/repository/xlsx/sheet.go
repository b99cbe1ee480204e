package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// resolveSheet returns the requested sheet name, or the active sheet when name is empty
func resolveSheet(f *excelize.File, name string) (string, error) {
	if name == "" {
		active := f.GetSheetName(f.GetActiveSheetIndex())
		if active == "" {
			return "", fmt.Errorf("workbook has no active sheet")
		}
		return active, nil
	}

	for _, sheet := range f.GetSheetList() {
		if sheet == name {
			return sheet, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found", name)
}
