package model

type Contact struct {
	Name       string // 姓名
	RawAddress string // 通訊地址原文
	Row        int    // 來源表格中的列號 (1-indexed)
}

// NormalizedAddress 郵遞區號在前的地址表示
type NormalizedAddress struct {
	PostalCode string // 3碼郵遞區號，查不到時為3個空白
	Body       string // 地址本文
}

// Margins 頁面邊界 (mm)，各邊可為 0
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// GridSpec 標籤紙的格線設定
type GridSpec struct {
	Columns    int     // 欄數
	RowsTarget int     // 實體標籤紙的列數（非資料筆數換算出的列數）
	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margins    Margins
}

// Capacity 單頁可容納的標籤數
func (s GridSpec) Capacity() int {
	return s.RowsTarget * s.Columns
}

// CellPlacement 一筆資料對應到頁面上的一格
type CellPlacement struct {
	RecordIndex int
	RowIndex    int
	ColumnIndex int
	CellWidth   float64 // mm
	CellHeight  float64 // mm
	OriginX     float64 // 格子左上角 X (mm)
	OriginY     float64 // 格子左上角 Y (mm)
}

// GridResult 整頁的格線計算結果
type GridResult struct {
	Rows       int // ceil(資料筆數 / 欄數)
	RowsTarget int
	Columns    int
	CellWidth  float64
	CellHeight float64
	Placements []CellPlacement // 與輸入資料同序，一筆一格
}
