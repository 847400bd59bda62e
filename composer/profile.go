package composer

import (
	"errors"
	"fmt"
	"io"

	"github.com/ByLCY/curriculo/dsl"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

// LoadProfile 解析样式描述文件，并在 base 的副本上覆盖其中出现的参数。
func LoadProfile(r io.Reader, base Config) (Config, error) {
	doc, err := dsl.Parse(r)
	if err != nil {
		return base, fmt.Errorf("解析样式文件失败: %w", err)
	}
	return ApplyProfile(doc, base)
}

// ApplyProfile 把已解析的样式描述应用到 base 的副本上。
func ApplyProfile(doc *dsl.Document, base Config) (Config, error) {
	cfg := base.clone()
	for _, sec := range doc.Sections {
		for _, a := range sec.Block.Assignments {
			var err error
			switch sec.Kind {
			case "page":
				err = applyPage(&cfg, a)
			case "classic":
				err = applyClassic(&cfg.Classic, a)
			case "modern":
				err = applyModern(&cfg.Modern, a)
			case "theme":
				err = applyTheme(&cfg, sec.Name, a)
			case "labels":
				err = applyLabel(&cfg.Labels, a)
			case "fonts":
				err = applyFont(&cfg, a)
			case "meta":
				err = applyMeta(&cfg.Meta, a)
			default:
				return base, fmt.Errorf("%s: 未知的样式区块 %q", sec.Pos, sec.Kind)
			}
			if err != nil {
				return base, fmt.Errorf("%s: %s.%s: %w", a.Pos, sec.Kind, a.Key, err)
			}
		}
	}
	return cfg, nil
}

func mm(a *dsl.Assignment) (float64, error) {
	l, ok := layout.ParseLength(a.Value.Text())
	if !ok {
		return 0, fmt.Errorf("%q 不是合法长度", a.Value.Text())
	}
	return l.ToMM(), nil
}

func pt(a *dsl.Assignment) (float64, error) {
	l, ok := layout.ParseLength(a.Value.Text())
	if !ok {
		return 0, fmt.Errorf("%q 不是合法字号", a.Value.Text())
	}
	return l.ToPT(), nil
}

func setLength(dst *float64, a *dsl.Assignment, conv func(*dsl.Assignment) (float64, error)) error {
	v, err := conv(a)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func applyPage(cfg *Config, a *dsl.Assignment) error {
	switch a.Key {
	case "width":
		return setLength(&cfg.PageWidth, a, mm)
	case "height":
		return setLength(&cfg.PageHeight, a, mm)
	default:
		return errUnknownKey
	}
}

func applyClassic(m *ClassicMetrics, a *dsl.Assignment) error {
	lengths := map[string]*float64{
		"margin-left":     &m.MarginLeft,
		"margin-right":    &m.MarginRight,
		"margin-bottom":   &m.MarginBottom,
		"start":           &m.StartY,
		"line-height":     &m.LineHeight,
		"section-spacing": &m.SectionSpacing,
		"title-spacing":   &m.TitleSpacing,
		"small-spacing":   &m.SmallSpacing,
		"label-indent":    &m.LabelIndent,
		"divider-width":   &m.DividerWidth,
	}
	sizes := map[string]*float64{
		"title-size": &m.TitleSize,
		"body-size":  &m.BodySize,
	}
	if dst, ok := lengths[a.Key]; ok {
		return setLength(dst, a, mm)
	}
	if dst, ok := sizes[a.Key]; ok {
		return setLength(dst, a, pt)
	}
	switch a.Key {
	case "margin":
		if err := setLength(&m.MarginLeft, a, mm); err != nil {
			return err
		}
		m.MarginRight = m.MarginLeft
		return nil
	case "dividers":
		v, err := a.Value.Bool()
		m.Dividers = v
		return err
	case "postal-code":
		v, err := a.Value.Bool()
		m.ShowPostalCode = v
		return err
	case "divider-color":
		c, err := layout.ParseColor(a.Value.Text())
		m.DividerColor = c
		return err
	default:
		return errUnknownKey
	}
}

func applyModern(m *ModernMetrics, a *dsl.Assignment) error {
	lengths := map[string]*float64{
		"sidebar-width":       &m.SidebarWidth,
		"sidebar-padding":     &m.SidebarPadding,
		"main-x":              &m.MainX,
		"main-width":          &m.MainWidth,
		"start":               &m.StartY,
		"margin-bottom":       &m.MarginBottom,
		"line-height":         &m.LineHeight,
		"sidebar-line-height": &m.SidebarLineHeight,
		"small-spacing":       &m.SmallSpacing,
		"medium-spacing":      &m.MediumSpacing,
		"large-spacing":       &m.LargeSpacing,
		"title-spacing":       &m.TitleSpacing,
		"section-spacing":     &m.SectionSpacing,
		"block-spacing":       &m.BlockSpacing,
		"band-height":         &m.BandHeight,
		"photo-size":          &m.PhotoSize,
		"photo-ring":          &m.PhotoRing,
	}
	sizes := map[string]*float64{
		"title-size":           &m.TitleSize,
		"section-size":         &m.SectionSize,
		"body-size":            &m.BodySize,
		"sidebar-heading-size": &m.SidebarHeadSize,
		"sidebar-body-size":    &m.SidebarBodySize,
	}
	if dst, ok := lengths[a.Key]; ok {
		return setLength(dst, a, mm)
	}
	if dst, ok := sizes[a.Key]; ok {
		return setLength(dst, a, pt)
	}
	if a.Key == "photo-pixels" {
		l, ok := layout.ParseLength(a.Value.Text())
		if !ok || l.Unit != layout.UnitNone || l.Value < 1 {
			return fmt.Errorf("%q 不是合法像素数", a.Value.Text())
		}
		m.PhotoPixels = int(l.Value)
		return nil
	}
	return errUnknownKey
}

func applyTheme(cfg *Config, name string, a *dsl.Assignment) error {
	if name == "" {
		return fmt.Errorf("theme 区块需要名称")
	}
	key := resume.Theme(name)
	if t, ok := resume.ParseTheme(name); ok {
		key = t
	}
	pal := cfg.Themes[key]
	c, err := layout.ParseColor(a.Value.Text())
	if err != nil {
		return err
	}
	switch a.Key {
	case "primary":
		pal.Primary = c
	case "secondary":
		pal.Secondary = c
	default:
		return errUnknownKey
	}
	cfg.Themes[key] = pal
	return nil
}

func applyLabel(l *Labels, a *dsl.Assignment) error {
	if a.Key == "preset" {
		switch a.Value.Text() {
		case "pt", "portuguese":
			*l = PortugueseLabels()
		case "en", "english":
			*l = EnglishLabels()
		default:
			return fmt.Errorf("未知的标签预设 %q", a.Value.Text())
		}
		return nil
	}
	if !l.set(a.Key, a.Value.Text()) {
		return errUnknownKey
	}
	return nil
}

func applyFont(cfg *Config, a *dsl.Assignment) error {
	switch a.Key {
	case "regular":
		cfg.Regular.Src = a.Value.Text()
	case "bold":
		cfg.Bold.Src = a.Value.Text()
	default:
		return errUnknownKey
	}
	return nil
}

func applyMeta(meta *layout.DocumentMeta, a *dsl.Assignment) error {
	switch a.Key {
	case "subject":
		meta.Subject = a.Value.Text()
	case "creator":
		meta.Creator = a.Value.Text()
	case "keywords":
		meta.Keywords = a.Value.Strings()
	default:
		return errUnknownKey
	}
	return nil
}

var errUnknownKey = errors.New("未知的键")
