package domain

import (
	"fmt"
	"math"
	"strings"
)

// Gender is carried through a reading but never consulted by the algorithm.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// ParseGender accepts the three known values. An empty string defaults to
// Male, matching the input form's preselected option.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return Male, nil
	case Male, Female, Other:
		return g, nil
	default:
		return "", fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, s)
	}
}

// BirthInfo is what a user submits to have a fortune read.
type BirthInfo struct {
	Name      string
	BirthDate Date
	Gender    Gender
}

// Prediction is the mock BTC sentiment of a fortune.
type Prediction string

const (
	Bullish Prediction = "bullish"
	Bearish Prediction = "bearish"
	Neutral Prediction = "neutral"
)

// Label returns the display label shown next to the trend.
func (p Prediction) Label() string {
	switch p {
	case Bullish:
		return "📈 看涨"
	case Bearish:
		return "📉 看跌"
	default:
		return "➡️ 震荡"
	}
}

const (
	luckySaturation = 70
	luckyLightness  = 60
)

// HSL is a color in hue/saturation/lightness form. Saturation and
// lightness are percentages.
type HSL struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

func luckyColor(hue int) HSL {
	return HSL{Hue: hue, Saturation: luckySaturation, Lightness: luckyLightness}
}

// String renders the color in CSS notation, e.g. "hsl(314, 70%, 60%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// Hex converts the color to #rrggbb for terminals and other sRGB sinks.
func (c HSL) Hex() string {
	h := float64(c.Hue) / 360
	s := float64(c.Saturation) / 100
	l := float64(c.Lightness) / 100

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return fmt.Sprintf("#%02x%02x%02x", to8bit(r), to8bit(g), to8bit(b))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func to8bit(v float64) int {
	return int(math.Round(v * 255))
}

// Fortune is the daily reading derived from a birth date and a day.
type Fortune struct {
	Suitable      []string   `json:"suitable"`
	Unsuitable    []string   `json:"unsuitable"`
	CodeQuality   int        `json:"code_quality"`
	BTCPrediction Prediction `json:"btc_prediction"`
	MysticMessage string     `json:"mystic_message"`
	LuckyColor    HSL        `json:"lucky_color"`
	LuckyLanguage string     `json:"lucky_language"`
}

// Reading is a Fortune together with the inputs it was read for.
type Reading struct {
	Name     string
	Gender   Gender
	Birth    Date
	Date     Date
	Seed     int
	CoderDay string
	Fortune  Fortune
}
