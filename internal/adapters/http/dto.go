package http

import "github.com/evan-taojiangcb/huangli-programmer/internal/domain"

// FortuneRequest is the JSON body accepted by POST /v1/fortune.
type FortuneRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Date      string `json:"date"`
}

// FortuneResponse is the JSON shape returned by /v1/fortune.
type FortuneResponse struct {
	Name      string        `json:"name,omitempty"`
	Gender    domain.Gender `json:"gender"`
	BirthDate string        `json:"birth_date"`
	Date      string        `json:"date"`
	CoderDay  string        `json:"coder_day,omitempty"`
	Fortune   FortuneResp   `json:"fortune"`
	ShareText string        `json:"share_text"`
	Meta      MetaResp      `json:"meta"`
}

type FortuneResp struct {
	Suitable      []string          `json:"suitable"`
	Unsuitable    []string          `json:"unsuitable"`
	CodeQuality   int               `json:"code_quality"`
	BTCPrediction domain.Prediction `json:"btc_prediction"`
	BTCLabel      string            `json:"btc_label"`
	MysticMessage string            `json:"mystic_message"`
	LuckyColor    ColorResp         `json:"lucky_color"`
	LuckyLanguage string            `json:"lucky_language"`
}

type ColorResp struct {
	Hue        int    `json:"hue"`
	Saturation int    `json:"saturation"`
	Lightness  int    `json:"lightness"`
	CSS        string `json:"css"`
	Hex        string `json:"hex"`
}

type MetaResp struct {
	Seed      int    `json:"seed"`
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// TickerResponse is the JSON shape returned by GET /v1/ticker.
type TickerResponse struct {
	Symbol    string `json:"symbol"`
	Price     string `json:"price"`
	Change24h string `json:"change_24h"`
	Trend     string `json:"trend"`
	UpdatedAt string `json:"updated_at"`
}

// PoolsResponse is the JSON shape returned by GET /v1/pools.
type PoolsResponse struct {
	Suitable       []string `json:"suitable"`
	Unsuitable     []string `json:"unsuitable"`
	MysticMessages []string `json:"mystic_messages"`
	LuckyLanguages []string `json:"lucky_languages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
