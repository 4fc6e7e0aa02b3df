package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"label_maker/internal/address"
	"label_maker/internal/config"
	"label_maker/internal/layout"
	"label_maker/internal/model"
	"label_maker/internal/pdf"
	"label_maker/internal/xlsx"
)

func main() {
	log.SetReportTimestamp(false)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		cmdGenerate(args)
	case "list":
		cmdList(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "不明的指令: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `生日賀卡標籤產生工具

用法:
  label_maker <command> [options]

指令:
  generate     產生標籤 PDF (A4 滿版 2欄 x 8列)
  list         顯示名單與正規化後的郵遞區號
  help         顯示本說明

共通選項:
  -config string  設定檔路徑 (default: config.json)
  -input string   名單檔案 (.xlsx / .csv / .tsv)，覆寫設定檔的值

generate 選項:
  -output string  輸出檔案路徑，覆寫設定檔的值
`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "設定檔路徑")
	input := fs.String("input", "", "名單檔案路徑")
	output := fs.String("output", "", "輸出檔案路徑")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitError(err)
	}
	if *input != "" {
		cfg.InputFile = *input
	}
	if *output != "" {
		cfg.OutputFile = *output
	}

	contacts, addrs := loadAndNormalize(cfg)

	spec := cfg.GridSpec()
	grid, err := layout.Grid(spec, len(contacts))
	if err != nil {
		if errors.Is(err, layout.ErrOverflow) {
			exitError(fmt.Errorf("%w。單頁只能印 %d 格，請分批處理", err, spec.Capacity()))
		}
		exitError(err)
	}

	gen, err := pdf.NewGenerator(cfg.FontFile, spec, cfg.NameSuffix, cfg.Sheet.DrawBorder)
	if err != nil {
		exitError(err)
	}

	if err := gen.RenderSheet(grid, contacts, addrs); err != nil {
		exitError(err)
	}
	if err := gen.Save(cfg.OutputFile); err != nil {
		exitError(fmt.Errorf("PDF 儲存失敗: %w", err))
	}

	fmt.Printf("已產生 %s (%d筆, %d欄 x %d列)\n", cfg.OutputFile, len(contacts), grid.Columns, grid.RowsTarget)
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "設定檔路徑")
	input := fs.String("input", "", "名單檔案路徑")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitError(err)
	}
	if *input != "" {
		cfg.InputFile = *input
	}

	contacts, addrs := loadAndNormalize(cfg)

	fmt.Printf("--- 名單 (%d筆) ---\n", len(contacts))
	for i, c := range contacts {
		mark := " "
		if addrs[i].PostalCode == address.BlankCode {
			mark = "?"
		}
		fmt.Printf("  [%s] %-10s 〒%s %s\n", mark, c.Name, addrs[i].PostalCode, addrs[i].Body)
	}
}

// loadAndNormalize 讀入名單並逐筆正規化地址。查無郵遞區號只提出警告，
// 不會中斷整批處理。
func loadAndNormalize(cfg *config.Config) ([]model.Contact, []model.NormalizedAddress) {
	loader, err := xlsx.New(cfg.InputFile, cfg.SpreadsheetID, cfg.SheetName, cfg.NameColumn, cfg.AddressColumn)
	if err != nil {
		exitError(err)
	}

	contacts, err := loader.Load()
	if err != nil {
		exitError(err)
	}

	addrs := make([]model.NormalizedAddress, len(contacts))
	for i, c := range contacts {
		addrs[i] = address.Normalize(c.RawAddress)
		if addrs[i].PostalCode == address.BlankCode && addrs[i].Body != "" {
			log.Warn("查無郵遞區號", "row", c.Row, "name", c.Name, "address", c.RawAddress)
		}
	}

	return contacts, addrs
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "錯誤: %v\n", err)
	os.Exit(1)
}
