package canvasrenderer

import (
	"strings"

	"github.com/ByLCY/curriculo/layout"
)

// wrapText 按段落（\n）切分后逐段贪心折行。词间空白统一为一个空格；
// 单个词比 limit 还宽时按字符拆开。空段落产生空行，limit<=0 表示不限宽。
func wrapText(content string, limit float64, measure func(string) float64) []layout.TextLine {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	var lines []layout.TextLine
	flush := func(s string) {
		lines = append(lines, layout.TextLine{Content: s, Width: measure(s)})
	}

	for _, para := range strings.Split(strings.ReplaceAll(content, "\r", ""), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			flush("")
			continue
		}
		current := ""
		for _, word := range words {
			for _, piece := range breakWord(word, limit, measure) {
				candidate := piece
				if current != "" {
					candidate = current + " " + piece
				}
				if current != "" && limit > 0 && measure(candidate) > limit {
					flush(current)
					current = piece
					continue
				}
				current = candidate
			}
		}
		flush(current)
	}
	return lines
}

// breakWord 把超宽的词拆成不超过 limit 的片段；每段至少保留一个字符。
func breakWord(word string, limit float64, measure func(string) float64) []string {
	if limit <= 0 || measure(word) <= limit {
		return []string{word}
	}
	var parts []string
	var piece []rune
	for _, r := range word {
		if len(piece) > 0 && measure(string(append(piece, r))) > limit {
			parts = append(parts, string(piece))
			piece = piece[:0]
		}
		piece = append(piece, r)
	}
	if len(piece) > 0 {
		parts = append(parts, string(piece))
	}
	return parts
}
