package layout

import (
	"errors"
	"fmt"
	"math"

	"label_maker/internal/model"
)

// Tolerance 列高累積後允許的誤差 (mm)。超過表示格線會被擠出頁面。
const Tolerance = 0.1

var (
	// ErrOverflow 資料筆數超過單頁可容納的標籤數
	ErrOverflow = errors.New("資料筆數超過單頁可容納的標籤數")
	// ErrInvalidGridSpec 頁面或格線設定不合法
	ErrInvalidGridSpec = errors.New("標籤格線設定不合法")
)

// Grid 依格線設定計算每一格的大小與位置，並把資料依序填入。
// 填入順序為由左至右、由上至下。這個順序決定每筆資料印在哪一張
// 實體標籤上，屬於正確性的一部分，不可改動。
// 資料筆數少於格數時，多出來的格子留白；超過格數則回傳 ErrOverflow，
// 絕不默默截斷。
func Grid(spec model.GridSpec, recordCount int) (model.GridResult, error) {
	if err := validate(spec, recordCount); err != nil {
		return model.GridResult{}, err
	}

	if capacity := spec.Capacity(); recordCount > capacity {
		return model.GridResult{}, fmt.Errorf("%w: %d 筆 > %d 格", ErrOverflow, recordCount, capacity)
	}

	printableW := spec.PageWidth - spec.Margins.Left - spec.Margins.Right
	printableH := spec.PageHeight - spec.Margins.Top - spec.Margins.Bottom
	cellW := printableW / float64(spec.Columns)
	cellH := printableH / float64(spec.RowsTarget)

	if d := math.Abs(cellH*float64(spec.RowsTarget) - printableH); d > Tolerance {
		return model.GridResult{}, fmt.Errorf("%w: 列高累積誤差 %.3f mm 超出容許值", ErrInvalidGridSpec, d)
	}

	placements := make([]model.CellPlacement, recordCount)
	for i := 0; i < recordCount; i++ {
		r := i / spec.Columns
		c := i % spec.Columns
		placements[i] = model.CellPlacement{
			RecordIndex: i,
			RowIndex:    r,
			ColumnIndex: c,
			CellWidth:   cellW,
			CellHeight:  cellH,
			OriginX:     spec.Margins.Left + float64(c)*cellW,
			OriginY:     spec.Margins.Top + float64(r)*cellH,
		}
	}

	return model.GridResult{
		Rows:       (recordCount + spec.Columns - 1) / spec.Columns,
		RowsTarget: spec.RowsTarget,
		Columns:    spec.Columns,
		CellWidth:  cellW,
		CellHeight: cellH,
		Placements: placements,
	}, nil
}

func validate(spec model.GridSpec, recordCount int) error {
	switch {
	case recordCount < 0:
		return fmt.Errorf("%w: 資料筆數不可為負 (%d)", ErrInvalidGridSpec, recordCount)
	case spec.Columns <= 0:
		return fmt.Errorf("%w: 欄數必須為正 (%d)", ErrInvalidGridSpec, spec.Columns)
	case spec.RowsTarget <= 0:
		return fmt.Errorf("%w: 列數必須為正 (%d)", ErrInvalidGridSpec, spec.RowsTarget)
	case spec.PageWidth <= 0 || spec.PageHeight <= 0:
		return fmt.Errorf("%w: 頁面尺寸必須為正 (%.1f x %.1f)", ErrInvalidGridSpec, spec.PageWidth, spec.PageHeight)
	case spec.Margins.Top < 0 || spec.Margins.Bottom < 0 || spec.Margins.Left < 0 || spec.Margins.Right < 0:
		return fmt.Errorf("%w: 邊界不可為負", ErrInvalidGridSpec)
	case spec.Margins.Left+spec.Margins.Right >= spec.PageWidth:
		return fmt.Errorf("%w: 左右邊界超過頁面寬度", ErrInvalidGridSpec)
	case spec.Margins.Top+spec.Margins.Bottom >= spec.PageHeight:
		return fmt.Errorf("%w: 上下邊界超過頁面高度", ErrInvalidGridSpec)
	}
	return nil
}
