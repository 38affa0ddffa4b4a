package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"thesisdeck/deck"
)

// ReportService writes the XLSX build report: the outline inventory on one
// sheet and the resolved assets on another.
type ReportService struct {
	style deck.Style
}

// NewReportService creates a build report renderer.
func NewReportService(style deck.Style) *ReportService {
	return &ReportService{style: style}
}

// Generate renders the report workbook for the outline and its assets.
func (s *ReportService) Generate(outline []deck.SlideSpec, assets []*deck.ImageAsset) ([]byte, error) {
	if len(outline) == 0 {
		return nil, fmt.Errorf("cannot report on an empty outline")
	}

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: s.style.Palette.White,
			Name:  s.style.Typography.Family,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: s.style.Palette.Copper,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: s.style.Typography.Family,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		})

	ws := wb.GetActiveSheet()
	ws.SetTitle("Outline")
	s.writeOutlineSheet(ws, outline, headerStyle, dataStyle)

	if len(assets) > 0 {
		as, err := wb.AddSheet("Assets")
		if err != nil {
			return nil, fmt.Errorf("failed to create assets sheet: %w", err)
		}
		s.writeAssetsSheet(as, assets, headerStyle, dataStyle)
	}

	wb.Properties.Title = strings.ReplaceAll(outline[0].Title, "\n", " ") + " — Build Report"
	wb.Properties.Creator = "deckbuild"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write build report: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) writeOutlineSheet(ws *gospreadsheet.Worksheet, outline []deck.SlideSpec, headerStyle, dataStyle *gospreadsheet.Style) {
	headers := []string{"Slide", "Title", "Section", "Layout", "Background", "Images", "Citations"}
	widths := []float64{8, 38, 22, 16, 12, 30, 50}
	for i, h := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, h)
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(i, widths[i])
	}
	ws.SetRowHeight(0, 25)

	for rowIdx, spec := range outline {
		row := rowIdx + 1
		images := make([]string, 0, len(spec.Images))
		images = append(images, spec.Images...)
		for _, column := range spec.Columns {
			if column.Image != "" {
				images = append(images, column.Image)
			}
		}
		values := []interface{}{
			spec.Number,
			strings.ReplaceAll(spec.Title, "\n", " "),
			spec.SectionLabel,
			string(spec.Layout),
			string(spec.Background),
			strings.Join(images, ", "),
			strings.Join(spec.Citations, "; "),
		}
		for colIdx, v := range values {
			cellName, _ := gospreadsheet.CellName(row, colIdx)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
	}
	ws.FreezePane("A2")
}

func (s *ReportService) writeAssetsSheet(ws *gospreadsheet.Worksheet, assets []*deck.ImageAsset, headerStyle, dataStyle *gospreadsheet.Style) {
	headers := []string{"Reference", "Path", "Source", "Used on slides"}
	widths := []float64{34, 60, 12, 20}
	for i, h := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, h)
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(i, widths[i])
	}
	ws.SetRowHeight(0, 25)

	for rowIdx, asset := range assets {
		row := rowIdx + 1
		source := "asset"
		if asset.Generated {
			source = "chart"
		}
		slides := make([]string, 0, len(asset.Slides))
		for _, n := range asset.Slides {
			slides = append(slides, fmt.Sprintf("%d", n))
		}
		values := []interface{}{
			asset.Name,
			asset.Path,
			source,
			strings.Join(slides, ", "),
		}
		for colIdx, v := range values {
			cellName, _ := gospreadsheet.CellName(row, colIdx)
			ws.SetCellValue(cellName, v)
			ws.SetCellStyle(cellName, dataStyle)
		}
	}
	ws.FreezePane("A2")
}
