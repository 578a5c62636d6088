package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newFortuneCmd(fixedClock{t: time.Date(2024, time.February, 10, 8, 0, 0, 0, time.UTC)})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFortuneCmd_JSON(t *testing.T) {
	out, err := runCmd(t, "--birth", "1999-09-09", "--tz", "UTC", "--json")
	require.NoError(t, err)

	var got jsonReading
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "2024-02-10", got.Date)
	assert.Equal(t, 4321, got.Seed)
	assert.Equal(t, []string{"忽略警告", "随意改配置", "跳过测试"}, got.Fortune.Unsuitable)
	assert.Equal(t, 314, got.Fortune.LuckyColor.Hue)
}

func TestFortuneCmd_Scroll(t *testing.T) {
	out, err := runCmd(t, "--birth", "1999-09-09", "--name", "老黄", "--date", "2024-10-24")
	require.NoError(t, err)

	assert.Contains(t, out, "程序员黄历")
	assert.Contains(t, out, "道号：老黄")
	assert.Contains(t, out, "2024年10月24日星期四")
	assert.Contains(t, out, "程序员节")
	assert.Contains(t, out, "今日代码质量")
	assert.Contains(t, out, "幸运语言")
}

func TestLongDate(t *testing.T) {
	tests := map[string]string{
		"2024-10-24": "2024年10月24日星期四",
		"2024-02-10": "2024年2月10日星期六",
		"2026-10-11": "2026年10月11日星期日",
	}
	for in, want := range tests {
		d, err := domain.ParseDate(in)
		require.NoError(t, err)
		assert.Equal(t, want, longDate(d), in)
	}
}

func TestFortuneCmd_Errors(t *testing.T) {
	_, err := runCmd(t)
	assert.Error(t, err, "missing --birth")

	_, err = runCmd(t, "--birth", "not-a-date")
	assert.Error(t, err)

	_, err = runCmd(t, "--birth", "1999-09-09", "--tz", "Nowhere/Special")
	assert.Error(t, err)
}

func TestPoolsCmd(t *testing.T) {
	cmd := newPoolsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "宜 (24)")
	assert.Contains(t, out.String(), "幸运语言 (10)")
	assert.Contains(t, out.String(), "Elixir")
}
