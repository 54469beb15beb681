package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetWriter appends display blocks to one section worksheet, tracking the
// current row so builders never address cells directly.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles *styleSet
	row    int
}

// newSection adds a worksheet with its own header/footer to the workbook.
// Sheet order in the workbook is section order in the document.
func newSection(f *excelize.File, name string, styles *styleSet, header, footer string) (*sheetWriter, error) {
	if _, err := f.NewSheet(name); err != nil {
		return nil, err
	}
	if err := f.SetHeaderFooter(name, &excelize.HeaderFooterOptions{
		OddHeader: header,
		OddFooter: footer,
	}); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(name, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(name, "B", "F", 24); err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, sheet: name, styles: styles, row: 1}, nil
}

func (w *sheetWriter) cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// heading writes the section title row.
func (w *sheetWriter) heading(text string) error {
	c := w.cell(1, w.row)
	if err := w.f.SetCellValue(w.sheet, c, text); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, c, c, w.styles.Title); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(w.sheet, w.row, 28); err != nil {
		return err
	}
	w.row += 2
	return nil
}

// subheading writes a bold block title.
func (w *sheetWriter) subheading(text string) error {
	c := w.cell(1, w.row)
	if err := w.f.SetCellValue(w.sheet, c, text); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, c, c, w.styles.Subtitle); err != nil {
		return err
	}
	w.row++
	return nil
}

// keyValue writes one label/value row.
func (w *sheetWriter) keyValue(label, value string) error {
	lc := w.cell(1, w.row)
	vc := w.cell(2, w.row)
	if err := w.f.SetCellValue(w.sheet, lc, label); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, lc, lc, w.styles.Label); err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, vc, value); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, vc, vc, w.styles.Value); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) blank() {
	w.row++
}

// tableHead writes a styled header row for a table block.
func (w *sheetWriter) tableHead(cols ...string) error {
	for i, col := range cols {
		c := w.cell(i+1, w.row)
		if err := w.f.SetCellValue(w.sheet, c, col); err != nil {
			return err
		}
		if err := w.f.SetCellStyle(w.sheet, c, c, w.styles.TableHead); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

// tableRow writes one data row under a tableHead.
func (w *sheetWriter) tableRow(vals ...string) error {
	for i, val := range vals {
		c := w.cell(i+1, w.row)
		if err := w.f.SetCellValue(w.sheet, c, val); err != nil {
			return err
		}
		if err := w.f.SetCellStyle(w.sheet, c, c, w.styles.TableCell); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

// maxImageWidth is the displayed width budget in pixels; larger pictures
// are scaled down to fit the page.
const maxImageWidth = 480.0

// picture embeds one image anchored at the current row and advances past
// its displayed height.
func (w *sheetWriter) picture(img Image) error {
	scale := 1.0
	if img.Width > 0 && float64(img.Width) > maxImageWidth {
		scale = maxImageWidth / float64(img.Width)
	}
	err := w.f.AddPictureFromBytes(w.sheet, w.cell(1, w.row), &excelize.Picture{
		Extension: img.Extension,
		File:      img.Data,
		Format: &excelize.GraphicOptions{
			ScaleX: scale,
			ScaleY: scale,
		},
	})
	if err != nil {
		return fmt.Errorf("embed picture: %w", err)
	}

	// Default row height is ~20px; leave a blank row after the picture.
	rows := 12
	if img.Height > 0 {
		rows = int(float64(img.Height)*scale/20) + 2
	}
	w.row += rows
	return nil
}
