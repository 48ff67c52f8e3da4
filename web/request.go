package web

type StemRequest struct {
	Words []string `json:"words"`
}

type TokenizeRequest struct {
	Text            string `json:"text"`
	Language        string `json:"language"`
	AllowDuplicates bool   `json:"allow_duplicates"`
}

type StemResponse struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type MeasureResponse struct {
	Word    string `json:"word"`
	Measure int    `json:"measure"`
}

type CacheStats struct {
	Entries   int   `json:"entries"`
	Evictions int64 `json:"evictions"`
}

type TokenizeResponse struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}
