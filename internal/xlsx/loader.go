package xlsx

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"label_maker/internal/address"
	"label_maker/internal/model"
)

// headerScanRows 標題列可能不在第一列，最多往下找這麼多列
const headerScanRows = 20

type sourceMode int

const (
	modeExcel sourceMode = iota
	modeCSV
	modeTSV
	modePublicCSV
)

type Loader struct {
	mode         sourceMode
	path         string
	publicCSVURL string
	httpClient   *http.Client
	nameLabel    string
	addressLabel string
}

// New 依輸入來源建立讀取器。指定 inputFile 時依副檔名判斷格式，
// 否則改用公開 Google 試算表的 CSV 匯出。
func New(inputFile, spreadsheetID, sheetName, nameLabel, addressLabel string) (*Loader, error) {
	l := &Loader{
		httpClient:   &http.Client{},
		nameLabel:    nameLabel,
		addressLabel: addressLabel,
	}

	if inputFile != "" {
		l.path = inputFile
		switch strings.ToLower(filepath.Ext(inputFile)) {
		case ".xlsx":
			l.mode = modeExcel
		case ".csv":
			l.mode = modeCSV
		case ".tsv", ".txt":
			l.mode = modeTSV
		default:
			return nil, fmt.Errorf("不支援的檔案格式: %s (支援 .xlsx / .csv / .tsv)", inputFile)
		}
		return l, nil
	}

	if spreadsheetID == "" {
		return nil, fmt.Errorf("未指定輸入檔案或試算表")
	}

	l.mode = modePublicCSV
	l.publicCSVURL = fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		url.PathEscape(spreadsheetID),
		url.QueryEscape(sheetName),
	)
	return l, nil
}

// Load 讀入名單。標題列之前的內容一律略過，標題列之後姓名與地址
// 皆為空的列視為空白列跳過，其餘依原始順序回傳。
func (l *Loader) Load() ([]model.Contact, error) {
	rows, err := l.readRows()
	if err != nil {
		return nil, fmt.Errorf("名單讀取失敗: %w", err)
	}

	headerIdx, cols, err := findHeader(rows, l.nameLabel, l.addressLabel)
	if err != nil {
		return nil, err
	}

	var contacts []model.Contact
	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-indexed

		name := cleanCell(getCell(row, cols.name))
		addr := cleanCell(getCell(row, cols.address))
		if name == "" && addr == "" {
			log.Warn("跳過空白列", "row", rowNum)
			continue
		}

		contacts = append(contacts, model.Contact{
			Name:       name,
			RawAddress: addr,
			Row:        rowNum,
		})
	}

	if len(contacts) == 0 {
		return nil, fmt.Errorf("名單中沒有資料")
	}

	return contacts, nil
}

func (l *Loader) readRows() ([][]string, error) {
	switch l.mode {
	case modeExcel:
		return l.readExcel()
	case modeCSV:
		return l.readDelimited(',')
	case modeTSV:
		return l.readDelimited('\t')
	case modePublicCSV:
		return l.readPublicCSV()
	}
	return nil, fmt.Errorf("未知的資料來源")
}

func (l *Loader) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("檔案中沒有工作表")
	}
	return f.GetRows(sheets[0])
}

func (l *Loader) readDelimited(comma rune) ([][]string, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	return parseDelimited(data, comma)
}

func (l *Loader) readPublicCSV() ([][]string, error) {
	resp, err := l.httpClient.Get(l.publicCSVURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("試算表下載失敗 (HTTP %d)。請確認試算表已設為公開", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseDelimited(data, ',')
}

func parseDelimited(data []byte, comma rune) ([][]string, error) {
	// Excel 匯出的 CSV 常帶 UTF-8 BOM，不先去掉的話標題列會比對不到
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

type columnIndex struct {
	name    int
	address int
}

// findHeader 在前 headerScanRows 列中找出同時含有姓名與地址欄位名稱的列
func findHeader(rows [][]string, nameLabel, addressLabel string) (int, columnIndex, error) {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	for i := 0; i < limit; i++ {
		cols := columnIndex{name: -1, address: -1}
		for j, cell := range rows[i] {
			switch strings.TrimSpace(cell) {
			case nameLabel:
				cols.name = j
			case addressLabel:
				cols.address = j
			}
		}
		if cols.name >= 0 && cols.address >= 0 {
			return i, cols, nil
		}
	}

	return 0, columnIndex{}, fmt.Errorf("前 %d 列中找不到含「%s」與「%s」的標題列", headerScanRows, nameLabel, addressLabel)
}

func getCell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// cleanCell 將空值記號正規化為空字串
func cleanCell(s string) string {
	if address.IsNullMarker(s) {
		return ""
	}
	return s
}
