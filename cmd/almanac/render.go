package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/evan-taojiangcb/huangli-programmer/internal/app"
	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
)

var (
	scrollStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#b91c1c")).Padding(1, 3)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#78350f"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dc2626"))
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151"))
	mysticStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7e22ce"))
	qualityStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b45309"))
)

const qualityBarWidth = 20

var weekdays = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// longDate renders d as 2024年10月24日星期四.
func longDate(d domain.Date) string {
	return fmt.Sprintf("%d年%d月%d日%s", d.Year, int(d.Month), d.Day, weekdays[d.Weekday()])
}

func renderScroll(resp app.ReadFortuneResponse) string {
	r := resp.Reading
	f := r.Fortune

	var b strings.Builder
	b.WriteString(titleStyle.Render("程序员黄历") + "\n")
	header := longDate(r.Date)
	if r.CoderDay != "" {
		header += " · " + r.CoderDay
	}
	b.WriteString(dimStyle.Render(header) + "\n")
	if r.Name != "" {
		b.WriteString("道号：" + r.Name + "\n")
	}

	b.WriteString("\n今日代码质量 " + qualityStyle.Render(fmt.Sprintf("%d/100", f.CodeQuality)) + "\n")
	b.WriteString(qualityBar(f.CodeQuality) + "\n\n")

	b.WriteString(goodStyle.Render("宜") + "\n")
	for _, s := range f.Suitable {
		b.WriteString("  ● " + s + "\n")
	}
	b.WriteString(badStyle.Render("忌") + "\n")
	for _, s := range f.Unsuitable {
		b.WriteString("  ● " + s + "\n")
	}

	b.WriteString("\n玄学预言\n")
	b.WriteString(mysticStyle.Render("“"+f.MysticMessage+"”") + "\n")
	b.WriteString("BTC 趋势：" + f.BTCPrediction.Label() + "\n\n")

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(f.LuckyColor.Hex())).Render("  ")
	b.WriteString("幸运颜色 " + swatch + " " + f.LuckyColor.String() + "\n")
	b.WriteString("幸运语言 " + f.LuckyLanguage)

	return scrollStyle.Render(b.String())
}

func qualityBar(q int) string {
	filled := q * qualityBarWidth / 100
	return qualityStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", qualityBarWidth-filled))
}
