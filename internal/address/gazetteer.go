package address

type gazetteerEntry struct {
	Place string
	Code  string
}

// gazetteer 鄉鎮市名對應郵遞區號的備用對照表。
// 依序比對、先中先贏，順序即優先順序，不可重排。
var gazetteer = []gazetteerEntry{
	{"花蓮市", "970"},
	{"新城鄉", "971"},
	{"秀林鄉", "972"},
	{"吉安鄉", "973"},
	{"壽豐鄉", "974"},
	{"鳳林鎮", "975"},
	{"光復鄉", "976"},
	{"豐濱鄉", "977"},
	{"瑞穗鄉", "978"},
	{"萬榮鄉", "979"},
	{"玉里鎮", "981"},
	{"卓溪鄉", "982"},
	{"富里鄉", "983"},
	{"臺東市", "950"},
}
