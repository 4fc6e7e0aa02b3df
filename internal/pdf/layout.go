package pdf

// ptToMM 字級換算係數 (1pt ≈ 0.3528mm)
const ptToMM = 0.3528

// 標籤內的版型：各行字級 (pt)、左縮排 (mm) 與行距
const (
	nameSize   = 14
	nameIndent = 5.0 // 0.5cm

	postalSize   = 12
	postalIndent = 5.0

	addrSize   = 12
	addrIndent = 13.0 // 1.3cm

	lineSpacing = 1.3 // 行距倍率
	addrGap     = 0.7 // 地址行前的間距 (mm)

	cellPaddingTop   = 1.5 // 內容過高時與格子上緣保留的內距 (mm)
	cellPaddingRight = 3.0 // 換行計算時保留的右側內距 (mm)

	borderWidth = 0.2 // 格線寬度 (mm)
)

// lineHeight 行高 (mm)
func lineHeight(size float64) float64 {
	return size * ptToMM * lineSpacing
}
