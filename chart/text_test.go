package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWidth(t *testing.T) {
	ascii := textWidth("abcd", 13)
	assert.InDelta(t, 28, ascii, 1e-9)

	// wide runes count as one em
	assert.InDelta(t, 30, textWidth("ニュー", 10), 1e-9)
}

func TestWrapLabel(t *testing.T) {
	t.Run("fits on one line", func(t *testing.T) {
		assert.Equal(t, []string{"Staten Island, NY"}, wrapLabel("Staten Island, NY", 200, 10))
	})

	t.Run("breaks at spaces", func(t *testing.T) {
		lines := wrapLabel("Santa Clara County", 50, 10)
		assert.Equal(t, []string{"Santa", "Clara", "County"}, lines)
	})

	t.Run("breaks between wide runes", func(t *testing.T) {
		assert.Equal(t, []string{"スタテ", "ンアイ", "ランド"}, wrapLabel("スタテンアイランド", 30, 10))
	})

	t.Run("keeps punctuation with the word before", func(t *testing.T) {
		lines := wrapLabel("クイーンズ区, ニューヨーク州", 40, 10)
		for _, l := range lines {
			assert.False(t, strings.HasPrefix(l, ","), "line %q starts with a comma", l)
		}
	})

	t.Run("never exceeds the width", func(t *testing.T) {
		label := "Multi several-very long city name long"
		lines := wrapLabel(label, 40, 10)
		assert.Greater(t, len(lines), 1)
		for _, l := range lines {
			assert.LessOrEqual(t, textWidth(l, 10), 40.0, "line %q", l)
		}
		joined := strings.ReplaceAll(strings.Join(lines, ""), " ", "")
		assert.Equal(t, strings.ReplaceAll(label, " ", ""), joined)
	})

	t.Run("single rune wider than the width", func(t *testing.T) {
		assert.Equal(t, []string{"ア", "イ"}, wrapLabel("アイ", 4, 10))
	})
}
