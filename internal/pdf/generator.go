package pdf

import (
	"fmt"

	"github.com/signintech/gopdf"

	"label_maker/internal/model"
)

const fontName = "label"

type Generator struct {
	pdf        *gopdf.GoPdf
	spec       model.GridSpec
	nameSuffix string
	drawBorder bool
}

func NewGenerator(fontFile string, spec model.GridSpec, nameSuffix string, drawBorder bool) (*Generator, error) {
	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: spec.PageWidth, H: spec.PageHeight},
		Unit:     gopdf.UnitMM,
	})

	if err := p.AddTTFFont(fontName, fontFile); err != nil {
		return nil, fmt.Errorf("字型載入失敗: %w", err)
	}
	// 姓名行以粗體樣式繪製，同一檔案再註冊一次粗體
	if err := p.AddTTFFontWithOption(fontName, fontFile, gopdf.TtfOption{Style: gopdf.Bold}); err != nil {
		return nil, fmt.Errorf("字型載入失敗: %w", err)
	}

	return &Generator{pdf: p, spec: spec, nameSuffix: nameSuffix, drawBorder: drawBorder}, nil
}

// RenderSheet 依格線計算結果繪製一整頁標籤。
// contacts、addrs 與 grid.Placements 必須同序同長。
func (g *Generator) RenderSheet(grid model.GridResult, contacts []model.Contact, addrs []model.NormalizedAddress) error {
	if len(contacts) != len(grid.Placements) || len(addrs) != len(grid.Placements) {
		return fmt.Errorf("資料筆數 (%d) 與格數 (%d) 不一致", len(contacts), len(grid.Placements))
	}

	g.pdf.AddPage()

	if g.drawBorder {
		g.drawGridLines(grid)
	}

	for i, pl := range grid.Placements {
		if err := g.drawCell(pl, contacts[i], addrs[i]); err != nil {
			return fmt.Errorf("第 %d 筆 (%s) 繪製失敗: %w", i+1, contacts[i].Name, err)
		}
	}

	return nil
}

// Save 將 PDF 寫入檔案
func (g *Generator) Save(path string) error {
	return g.pdf.WritePdf(path)
}

// drawGridLines 畫出整張標籤紙的格線，方便裁切對位。
// 留白的格子也要有格線，因此依 RowsTarget 畫滿而非只畫到有資料的列。
func (g *Generator) drawGridLines(grid model.GridResult) {
	left := g.spec.Margins.Left
	top := g.spec.Margins.Top
	w := grid.CellWidth * float64(grid.Columns)
	h := grid.CellHeight * float64(grid.RowsTarget)

	g.pdf.SetStrokeColor(0, 0, 0)
	g.pdf.SetLineWidth(borderWidth)

	for c := 0; c <= grid.Columns; c++ {
		x := left + float64(c)*grid.CellWidth
		g.pdf.Line(x, top, x, top+h)
	}
	for r := 0; r <= grid.RowsTarget; r++ {
		y := top + float64(r)*grid.CellHeight
		g.pdf.Line(left, y, left+w, y)
	}
}

func (g *Generator) drawCell(pl model.CellPlacement, c model.Contact, addr model.NormalizedAddress) error {
	maxW := pl.CellWidth - addrIndent - cellPaddingRight
	addrLines, err := g.wrapText(addr.Body, addrSize, maxW)
	if err != nil {
		return err
	}

	// 內容在格子內垂直置中
	totalH := lineHeight(nameSize) + lineHeight(postalSize) + addrGap + float64(len(addrLines))*lineHeight(addrSize)
	y := pl.OriginY + (pl.CellHeight-totalH)/2
	if y < pl.OriginY+cellPaddingTop {
		y = pl.OriginY + cellPaddingTop
	}
	limitY := pl.OriginY + pl.CellHeight

	if c.Name != "" {
		name := c.Name
		if g.nameSuffix != "" {
			name += " " + g.nameSuffix
		}
		if err := g.drawLine(name, "B", nameSize, pl.OriginX+nameIndent, y, limitY); err != nil {
			return err
		}
	}
	y += lineHeight(nameSize)

	postal := fmt.Sprintf("%s ( %s )", addr.PostalCode, addr.PostalCode)
	if err := g.drawLine(postal, "", postalSize, pl.OriginX+postalIndent, y, limitY); err != nil {
		return err
	}
	y += lineHeight(postalSize) + addrGap

	for _, line := range addrLines {
		if err := g.drawLine(line, "", addrSize, pl.OriginX+addrIndent, y, limitY); err != nil {
			return err
		}
		y += lineHeight(addrSize)
	}

	return nil
}

func (g *Generator) drawLine(text, style string, size float64, x, y, limitY float64) error {
	if text == "" {
		return nil
	}
	if y+lineHeight(size) > limitY {
		return nil // 超出格子底部就不畫，不能溢到下一格
	}

	if err := g.pdf.SetFont(fontName, style, int(size)); err != nil {
		return err
	}
	g.pdf.SetX(x)
	g.pdf.SetY(y + (lineHeight(size)-size*ptToMM)/2)
	return g.pdf.Cell(nil, text)
}

// wrapText 依格子寬度將地址逐字換行
func (g *Generator) wrapText(text string, size float64, maxW float64) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	if err := g.pdf.SetFont(fontName, "", int(size)); err != nil {
		return nil, err
	}

	var lines []string
	var line []rune
	var lineW float64

	for _, r := range text {
		w, err := g.pdf.MeasureTextWidth(string(r))
		if err != nil {
			return nil, err
		}
		if lineW+w > maxW && len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
			lineW = 0
		}
		line = append(line, r)
		lineW += w
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}

	return lines, nil
}
