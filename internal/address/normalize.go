package address

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"label_maker/internal/model"
)

// BlankCode 查不到郵遞區號時的占位字串（3個空白，維持列印時的版面寬度）
const BlankCode = "   "

// 開頭3碼數字，允許半形/全形括號與全形數字，例如 (950)、950、（９５０）
var leadingCode = regexp.MustCompile(`^[\(（]?([0-9０-９]{3})[\)）]?(.*)`)

// nullMarkers 上游表格讀取可能產生的空值記號
var nullMarkers = map[string]struct{}{
	"nan":  {},
	"NaN":  {},
	"N/A":  {},
	"#N/A": {},
}

// IsNullMarker 判斷字串是否為空值記號
func IsNullMarker(s string) bool {
	_, ok := nullMarkers[strings.TrimSpace(s)]
	return ok
}

// Normalize 將地址原文轉為郵遞區號在前的形式。
// 任何輸入都會得到結果：抓不到開頭的郵遞區號就查備用對照表，
// 再查不到則以空白占位，不會因為單筆資料格式不對而中斷整批處理。
func Normalize(raw string) model.NormalizedAddress {
	if IsNullMarker(raw) {
		raw = ""
	}
	raw = strings.TrimSpace(raw)

	if m := leadingCode.FindStringSubmatch(raw); m != nil {
		return model.NormalizedAddress{
			PostalCode: width.Narrow.String(m[1]),
			Body:       strings.TrimSpace(m[2]),
		}
	}

	// 備用對照表只補郵遞區號，地址本文保持原樣
	for _, e := range gazetteer {
		if strings.Contains(raw, e.Place) {
			return model.NormalizedAddress{PostalCode: e.Code, Body: raw}
		}
	}

	return model.NormalizedAddress{PostalCode: BlankCode, Body: raw}
}
