// Package composer 把简历记录排成可渲染的页面。
//
// 同一个 Composer 支持两种版式：classic（单栏）与 modern（彩色侧边栏 + 主栏）。
// 每次 Compose 都使用独立的游标与页面收集器，Composer 本身可以并发使用。
package composer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ByLCY/curriculo/imaging"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

// PhotoCropper 把照片裁成圆形；失败时返回原图与 false。
type PhotoCropper interface {
	Crop(data []byte, size int) ([]byte, bool)
}

// Composer 根据版式把 resume.Record 排成 Document。
type Composer struct {
	Typesetter layout.Typesetter
	Config     Config
	Cropper    PhotoCropper
	// Now 决定文档的创建时间（文件名中的时间戳）。
	Now    func() time.Time
	Logger *slog.Logger
}

// New 创建使用默认参数的 Composer。
func New(ts layout.Typesetter) *Composer {
	return &Composer{
		Typesetter: ts,
		Config:     DefaultConfig(),
		Cropper:    imaging.Cropper{},
		Now:        time.Now,
	}
}

// strategy 是一种版式的排版流程。
type strategy interface {
	compose(w *writer, rec *resume.Record, theme resume.Theme) error
}

func strategyFor(variant resume.Variant) (resume.Variant, strategy) {
	v, ok := resume.ParseVariant(string(variant))
	if !ok {
		v = resume.VariantClassic
	}
	if v == resume.VariantModern {
		return v, modernLayout{}
	}
	return v, classicLayout{}
}

// Compose 排版一份简历。姓名为空时返回 *resume.ValidationError；
// 未知版式回落到 classic，未知主题回落到 blue。rec 不会被修改。
func (c *Composer) Compose(rec *resume.Record, variant resume.Variant, theme resume.Theme) (*Document, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if c.Typesetter == nil {
		return nil, fmt.Errorf("composer: typesetter is required")
	}
	v, strat := strategyFor(variant)
	if v == resume.VariantModern {
		theme = c.Config.resolveTheme(theme)
	}

	w := c.newWriter(v)
	if err := strat.compose(w, rec, theme); err != nil {
		return nil, fmt.Errorf("compose %s layout: %w", v, err)
	}

	name := strings.TrimSpace(rec.Name)
	meta := c.Config.Meta
	meta.Title = name
	meta.Author = name
	meta.Keywords = append(append([]string(nil), meta.Keywords...), rec.TechnicalSkills()...)

	result := &layout.Result{
		Pages:     w.pages.Pages(),
		Resources: w.resources,
		Meta:      meta,
	}
	c.logger().Debug("resume composed", "variant", v, "theme", theme, "pages", len(result.Pages))
	return &Document{
		Result:    result,
		Variant:   v,
		Theme:     theme,
		Name:      name,
		CreatedAt: c.now(),
	}, nil
}

func (c *Composer) newWriter(v resume.Variant) *writer {
	cfg := c.Config
	var margin layout.Margin
	if v == resume.VariantModern {
		margin = layout.Margin{Top: cfg.Modern.StartY, Bottom: cfg.Modern.MarginBottom, Left: cfg.Modern.MainX, Right: cfg.PageWidth - cfg.Modern.MainX - cfg.Modern.MainWidth}
	} else {
		margin = layout.Margin{Top: cfg.Classic.StartY, Bottom: cfg.Classic.MarginBottom, Left: cfg.Classic.MarginLeft, Right: cfg.Classic.MarginRight}
	}
	return &writer{
		cfg:        cfg,
		typesetter: c.Typesetter,
		cropper:    c.cropper(),
		pages:      layout.NewCollector(cfg.PageWidth, cfg.PageHeight, margin),
		cursor:     layout.NewCursor(),
		resources: layout.ResourceSet{
			Fonts: map[string]layout.FontResource{
				cfg.Regular.Name: cfg.Regular,
				cfg.Bold.Name:    cfg.Bold,
			},
			Images: map[string]layout.ImageResource{},
		},
	}
}

func (c *Composer) cropper() PhotoCropper {
	if c.Cropper != nil {
		return c.Cropper
	}
	return imaging.Cropper{Logger: c.Logger}
}

func (c *Composer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Composer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
