package composer

import (
	"strings"
	"testing"

	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

const corporateProfile = `
profile Corporate v1 {
  classic {
    margin: 2cm
    title-size: 26pt
    dividers: off
    postal-code: on
  }
  modern {
    sidebar-width: 60mm
    photo-pixels: 200
  }
  theme green {
    primary: #1B5E20
  }
  theme navy {
    primary: #0D1B2A
    secondary: #1B263B
  }
  labels {
    preset: en
    current: "Now"
  }
  fonts {
    bold: "embed:sans-oblique"
  }
  meta {
    keywords: ["cv", "go"]
  }
}
`

func TestLoadProfileOverridesConfig(t *testing.T) {
	base := DefaultConfig()
	cfg, err := LoadProfile(strings.NewReader(corporateProfile), base)
	if err != nil {
		t.Fatalf("load profile failed: %v", err)
	}
	if !eq(cfg.Classic.MarginLeft, 20) || !eq(cfg.Classic.MarginRight, 20) {
		t.Fatalf("margin 应为 20mm: %g %g", cfg.Classic.MarginLeft, cfg.Classic.MarginRight)
	}
	if cfg.Classic.TitleSize != 26 || cfg.Classic.Dividers || !cfg.Classic.ShowPostalCode {
		t.Fatalf("classic 参数未覆盖: %+v", cfg.Classic)
	}
	if cfg.Modern.SidebarWidth != 60 || cfg.Modern.PhotoPixels != 200 {
		t.Fatalf("modern 参数未覆盖: %+v", cfg.Modern)
	}
	green := cfg.Themes[resume.ThemeGreen]
	if green.Primary != (layout.Color{R: 0x1B, G: 0x5E, B: 0x20}) {
		t.Fatalf("green primary 未覆盖: %+v", green.Primary)
	}
	if green.Secondary != base.Themes[resume.ThemeGreen].Secondary {
		t.Fatalf("未出现的键应保持默认值")
	}
	if _, ok := cfg.Themes["navy"]; !ok {
		t.Fatalf("应注册自定义主题 navy")
	}
	if cfg.Labels.Contact != "Contact" || cfg.Labels.Current != "Now" {
		t.Fatalf("标签未覆盖: %+v", cfg.Labels)
	}
	if cfg.Bold.Src != "embed:sans-oblique" {
		t.Fatalf("字体未覆盖: %s", cfg.Bold.Src)
	}
	if len(cfg.Meta.Keywords) != 2 {
		t.Fatalf("关键字未覆盖: %v", cfg.Meta.Keywords)
	}
	// base 不应被修改
	if base.Themes[resume.ThemeGreen].Primary != (layout.Color{R: 76, G: 175, B: 80}) {
		t.Fatalf("LoadProfile 修改了 base 的主题表")
	}
}

func TestProfileAffectsComposition(t *testing.T) {
	cfg, err := LoadProfile(strings.NewReader(corporateProfile), DefaultConfig())
	if err != nil {
		t.Fatalf("load profile failed: %v", err)
	}
	c := newTestComposer()
	c.Config = cfg
	rec := anaSilva()
	rec.Address.PostalCode = "01000-000"
	rec.HasNoExperience = false
	rec.Experience = resume.Experience{Role: "Dev", StartPeriod: "2021-01", IsCurrent: true}

	doc, err := c.Compose(rec, resume.VariantClassic, "")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	text := joined(doc)
	for _, want := range []string{"Contact:", "Postal code: 01000-000", "2021-01 - Now"} {
		if !strings.Contains(text, want) {
			t.Fatalf("缺少 %q:\n%s", want, text)
		}
	}
	if len(doc.Result.Pages[0].Lines) != 0 {
		t.Fatalf("关闭分隔线后不应画线")
	}
	if nameBox(t, doc).X != 20 {
		t.Fatalf("姓名应从新边距开始")
	}

	modern, err := c.Compose(rec, resume.VariantModern, "navy")
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if modern.Theme != "navy" {
		t.Fatalf("自定义主题应被识别, got %s", modern.Theme)
	}
	if got := *modern.Result.Pages[0].Background[0].FillColor; got != (layout.Color{R: 0x0D, G: 0x1B, B: 0x2A}) {
		t.Fatalf("侧边栏颜色错误: %+v", got)
	}
}

func TestLoadProfileErrors(t *testing.T) {
	cases := map[string]string{
		"unknown section": `profile P { footer { size: 1 } }`,
		"unknown key":     `profile P { classic { color: #fff } }`,
		"bad length":      `profile P { classic { margin: "wide" } }`,
		"bad color":       `profile P { theme blue { primary: "azul" } }`,
		"nameless theme":  `profile P { theme { primary: #fff } }`,
		"syntax":          `profile P { classic { margin 1 } }`,
	}
	for name, src := range cases {
		if _, err := LoadProfile(strings.NewReader(src), DefaultConfig()); err == nil {
			t.Fatalf("%s: 期望错误", name)
		}
	}
}

func eq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
