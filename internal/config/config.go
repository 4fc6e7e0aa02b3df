package config

import (
	"encoding/json"
	"fmt"
	"os"

	"label_maker/internal/model"
)

// Sheet 標籤紙版面設定，單位 mm
type Sheet struct {
	PageWidth    float64 `json:"page_width_mm"`
	PageHeight   float64 `json:"page_height_mm"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	MarginTop    float64 `json:"margin_top_mm"`
	MarginBottom float64 `json:"margin_bottom_mm"`
	MarginLeft   float64 `json:"margin_left_mm"`
	MarginRight  float64 `json:"margin_right_mm"`
	DrawBorder   bool    `json:"draw_border"`
}

type Config struct {
	InputFile     string `json:"input_file"`
	SpreadsheetID string `json:"spreadsheet_id"`
	SheetName     string `json:"sheet_name"`
	FontFile      string `json:"font_file"`
	OutputFile    string `json:"output_file"`
	NameColumn    string `json:"name_column"`
	AddressColumn string `json:"address_column"`
	NameSuffix    string `json:"name_suffix"`
	Sheet         Sheet  `json:"sheet"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定檔讀取失敗: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定檔格式不正確: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default 預設為 A4 滿版 2欄 x 8列（10.5cm x 約3.7cm 一格）
func Default() *Config {
	return &Config{
		SheetName:     "工作表1",
		OutputFile:    "labels.pdf",
		NameColumn:    "姓名",
		AddressColumn: "通訊地址",
		NameSuffix:    "君收",
		Sheet: Sheet{
			PageWidth:  210.0,
			PageHeight: 297.0,
			Columns:    2,
			Rows:       8,
			DrawBorder: true,
		},
	}
}

func (c *Config) Validate() error {
	if c.FontFile == "" {
		return fmt.Errorf("font_file 未設定")
	}
	if c.InputFile == "" && c.SpreadsheetID == "" {
		return fmt.Errorf("input_file 或 spreadsheet_id 至少須設定一項")
	}
	return nil
}

// GridSpec 轉為版面計算用的格線設定
func (c *Config) GridSpec() model.GridSpec {
	return model.GridSpec{
		Columns:    c.Sheet.Columns,
		RowsTarget: c.Sheet.Rows,
		PageWidth:  c.Sheet.PageWidth,
		PageHeight: c.Sheet.PageHeight,
		Margins: model.Margins{
			Top:    c.Sheet.MarginTop,
			Bottom: c.Sheet.MarginBottom,
			Left:   c.Sheet.MarginLeft,
			Right:  c.Sheet.MarginRight,
		},
	}
}
