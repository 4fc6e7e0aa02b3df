package xlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T, path string) *Loader {
	t.Helper()
	l, err := New(path, "", "", "姓名", "通訊地址")
	require.NoError(t, err)
	return l
}

func TestLoadCSVHeaderNotFirstRow(t *testing.T) {
	csv := "生日賀卡名單,,\n" +
		"製表日期,2026/08/25,\n" +
		"編號,姓名,通訊地址\n" +
		"1,王小明,(950)臺東縣臺東市中華路一段1號\n" +
		"2,林美麗,花蓮縣吉安鄉中正路二段120號\n"
	path := writeTempFile(t, "list.csv", csv)

	contacts, err := newTestLoader(t, path).Load()
	require.NoError(t, err)
	require.Len(t, contacts, 2)

	assert.Equal(t, "王小明", contacts[0].Name)
	assert.Equal(t, "(950)臺東縣臺東市中華路一段1號", contacts[0].RawAddress)
	assert.Equal(t, 4, contacts[0].Row)

	assert.Equal(t, "林美麗", contacts[1].Name)
	assert.Equal(t, 5, contacts[1].Row)
}

func TestLoadCSVPlaceholderAndBlankRows(t *testing.T) {
	csv := "姓名,通訊地址\n" +
		"王小明,nan\n" +
		",,\n" +
		"nan,(970)花蓮縣花蓮市中山路100號\n" +
		"陳大同,#N/A\n"
	path := writeTempFile(t, "list.csv", csv)

	contacts, err := newTestLoader(t, path).Load()
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	// 空值記號正規化為空字串，但該筆仍保留、順序不變
	assert.Equal(t, "王小明", contacts[0].Name)
	assert.Equal(t, "", contacts[0].RawAddress)
	assert.Equal(t, "", contacts[1].Name)
	assert.Equal(t, "(970)花蓮縣花蓮市中山路100號", contacts[1].RawAddress)
	assert.Equal(t, "陳大同", contacts[2].Name)
	assert.Equal(t, "", contacts[2].RawAddress)
}

func TestLoadCSVWithBOM(t *testing.T) {
	// Excel 匯出的 CSV 開頭常帶 UTF-8 BOM，標題列仍須比對得到
	csv := "\ufeff姓名,通訊地址\n" +
		"王小明,(950)臺東縣臺東市中華路一段1號\n"
	path := writeTempFile(t, "list.csv", csv)

	contacts, err := newTestLoader(t, path).Load()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "王小明", contacts[0].Name)
	assert.Equal(t, "(950)臺東縣臺東市中華路一段1號", contacts[0].RawAddress)
}

func TestLoadTSV(t *testing.T) {
	tsv := "姓名\t通訊地址\n" +
		"王小明\t(950)臺東縣臺東市中華路一段1號\n"
	path := writeTempFile(t, "list.tsv", tsv)

	contacts, err := newTestLoader(t, path).Load()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "王小明", contacts[0].Name)
}

func TestLoadExcel(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"某某單位往來名單"},
		{},
		{"姓名", "通訊地址", "備註"},
		{"王小明", "(950)臺東縣臺東市中華路一段1號", ""},
		{"林美麗", "花蓮縣吉安鄉中正路二段120號", "同仁"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "list.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	contacts, err := newTestLoader(t, path).Load()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "王小明", contacts[0].Name)
	assert.Equal(t, "(950)臺東縣臺東市中華路一段1號", contacts[0].RawAddress)
	assert.Equal(t, "林美麗", contacts[1].Name)
}

func TestLoadHeaderMissing(t *testing.T) {
	csv := "編號,名字,地址\n1,王小明,臺東市\n"
	path := writeTempFile(t, "list.csv", csv)

	_, err := newTestLoader(t, path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "姓名")
	assert.Contains(t, err.Error(), "通訊地址")
}

func TestLoadEmptyList(t *testing.T) {
	csv := "姓名,通訊地址\n,,\n"
	path := writeTempFile(t, "list.csv", csv)

	_, err := newTestLoader(t, path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "沒有資料")
}

func TestNewUnsupportedExtension(t *testing.T) {
	_, err := New("list.docx", "", "", "姓名", "通訊地址")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "不支援")
}

func TestNewNoSource(t *testing.T) {
	_, err := New("", "", "", "姓名", "通訊地址")
	require.Error(t, err)
}

func TestNewPublicSheetURL(t *testing.T) {
	l, err := New("", "abc123", "名單 2026", "姓名", "通訊地址")
	require.NoError(t, err)
	assert.Equal(t, modePublicCSV, l.mode)
	assert.Contains(t, l.publicCSVURL, "docs.google.com/spreadsheets/d/abc123")
	assert.Contains(t, l.publicCSVURL, "tqx=out:csv")
	assert.NotContains(t, l.publicCSVURL, " ", "工作表名稱必須經過 URL 編碼")
}
