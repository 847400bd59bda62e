package canvasrenderer

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// 每个字符宽 1。
func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func contents(t *testing.T, content string, limit float64) []string {
	t.Helper()
	var out []string
	for _, ln := range wrapText(content, limit, runeWidth) {
		if ln.Width > limit && limit > 0 {
			t.Fatalf("行宽超出限制: %q", ln.Content)
		}
		out = append(out, ln.Content)
	}
	return out
}

func TestWrapTextGreedy(t *testing.T) {
	got := contents(t, "Go  SQL   Docker Kubernetes", 10)
	want := []string{"Go SQL", "Docker", "Kubernetes"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("折行结果不符 (-want +got):\n%s", diff)
	}
}

func TestWrapTextParagraphs(t *testing.T) {
	got := contents(t, "linha um\r\n\nlinha dois", 20)
	want := []string{"linha um", "", "linha dois"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("段落处理不符 (-want +got):\n%s", diff)
	}
}

func TestWrapTextBreaksLongWord(t *testing.T) {
	got := contents(t, "ab abcdefghij", 4)
	want := []string{"ab", "abcd", "efgh", "ij"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("长单词拆分不符 (-want +got):\n%s", diff)
	}
}

func TestWrapTextExactFit(t *testing.T) {
	got := contents(t, "abcd efgh", 9)
	if diff := cmp.Diff([]string{"abcd efgh"}, got); diff != "" {
		t.Fatalf("恰好等宽时不应换行 (-want +got):\n%s", diff)
	}
}

func TestWrapTextBlank(t *testing.T) {
	if got := wrapText(" \n\t", 10, runeWidth); got != nil {
		t.Fatalf("空白内容应返回 nil: %+v", got)
	}
	if got := contents(t, "sem limite de largura", 0); len(got) != 1 {
		t.Fatalf("limit<=0 时不折行: %v", got)
	}
}
