package domain

import (
	"fmt"
	"strings"
)

const (
	activitiesPerList = 3
	minCodeQuality    = 50
	codeQualitySpan   = 50
	hueDegrees        = 360
	bullishAbove      = 0.6
	bearishBelow      = 0.4
)

// ComputeFortune reads the fortune for birth on the evaluation day. It is
// pure: the same pair of dates always yields the same Fortune.
func ComputeFortune(birth, evaluation Date) Fortune {
	seed := CombinedSeed(birth, evaluation)

	// Pools are longer than activitiesPerList, so PickDistinct cannot fail.
	suitable, _ := PickDistinct(suitableActivities, activitiesPerList, seed+offsetSuitable)
	unsuitable, _ := PickDistinct(unsuitableActivities, activitiesPerList, seed+offsetUnsuitable)

	return Fortune{
		Suitable:      suitable,
		Unsuitable:    unsuitable,
		CodeQuality:   pickIndex(seed+offsetCodeQuality, codeQualitySpan) + minCodeQuality,
		BTCPrediction: predict(SeededRandom(seed + offsetBTC)),
		MysticMessage: mysticMessages[pickIndex(seed+offsetMystic, len(mysticMessages))],
		LuckyColor:    luckyColor(pickIndex(seed+offsetHue, hueDegrees)),
		LuckyLanguage: luckyLanguages[pickIndex(seed+offsetLanguage, len(luckyLanguages))],
	}
}

// predict buckets v: (0.6, 1) bullish, [0, 0.4) bearish, [0.4, 0.6] neutral.
func predict(v float64) Prediction {
	switch {
	case v > bullishAbove:
		return Bullish
	case v < bearishBelow:
		return Bearish
	default:
		return Neutral
	}
}

// NewReading attaches the inputs to an already computed fortune.
func NewReading(info BirthInfo, evaluation Date, f Fortune) Reading {
	coderDay, _ := CoderDay(evaluation)
	return Reading{
		Name:     info.Name,
		Gender:   info.Gender,
		Birth:    info.BirthDate,
		Date:     evaluation,
		Seed:     CombinedSeed(info.BirthDate, evaluation),
		CoderDay: coderDay,
		Fortune:  f,
	}
}

// ShareText is the plain-text summary used when a reading is shared.
func ShareText(f Fortune) string {
	return fmt.Sprintf("今日代码质量: %d/100\n宜: %s\n忌: %s",
		f.CodeQuality,
		strings.Join(f.Suitable, "、"),
		strings.Join(f.Unsuitable, "、"),
	)
}
