package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/curriculo/composer"
	"github.com/ByLCY/curriculo/config"
	"github.com/ByLCY/curriculo/export"
	"github.com/ByLCY/curriculo/layout"
	canvasrenderer "github.com/ByLCY/curriculo/renderer/canvas"
	"github.com/ByLCY/curriculo/resume"
	"github.com/ByLCY/curriculo/server"
	"github.com/ByLCY/curriculo/store"
)

type options struct {
	input   string
	output  string
	variant string
	theme   string
	photo   string
	profile string
	legacy  bool
	debug   string
}

func main() {
	cfg := config.Load()

	var opts options
	flag.StringVar(&opts.input, "in", "-", "简历 JSON 路径，- 表示标准输入")
	flag.StringVar(&opts.output, "out", "", "PDF 输出路径；为空时使用默认文件名保存到 EXPORT_DIR 或 S3")
	flag.StringVar(&opts.variant, "variant", "", "版式 classic/modern，为空时使用记录中的 template")
	flag.StringVar(&opts.theme, "theme", "", "现代版式配色 blue/green/red，为空时使用记录中的 backgroundTheme")
	flag.StringVar(&opts.photo, "photo", "", "照片文件路径，覆盖记录中的 photo")
	flag.StringVar(&opts.profile, "profile", cfg.ProfilePath, "样式配置文件路径")
	flag.BoolVar(&opts.legacy, "legacy", false, "输入为旧版葡语字段格式")
	flag.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	serve := flag.Bool("serve", false, "启动 HTTP 服务")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	c, r, err := newComposer(opts.profile)
	if err != nil {
		log.Fatalf("加载样式失败: %v", err)
	}

	if *serve {
		if err := runServer(cfg, c, r); err != nil {
			log.Fatalf("服务退出: %v", err)
		}
		return
	}

	location, err := run(context.Background(), cfg, opts, c, r)
	if err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", location)
}

// newComposer 创建渲染器与排版器；profile 中的相对字体路径相对于 profile 所在目录。
func newComposer(profilePath string) (*composer.Composer, *canvasrenderer.Renderer, error) {
	baseDir := ""
	if profilePath != "" {
		baseDir = filepath.Dir(profilePath)
	}
	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{BaseDir: baseDir})
	c := composer.New(r)
	if profilePath == "" {
		return c, r, nil
	}
	f, err := os.Open(profilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("无法打开样式文件 %s: %w", profilePath, err)
	}
	defer f.Close()
	c.Config, err = composer.LoadProfile(f, c.Config)
	if err != nil {
		return nil, nil, err
	}
	return c, r, nil
}

// run 串联读取、排版、渲染与保存，返回保存位置。
func run(ctx context.Context, cfg config.Config, opts options, c *composer.Composer, r *canvasrenderer.Renderer) (string, error) {
	rec, err := readRecord(opts.input, opts.legacy)
	if err != nil {
		return "", err
	}
	if opts.photo != "" {
		data, err := os.ReadFile(opts.photo)
		if err != nil {
			return "", fmt.Errorf("读取照片失败: %w", err)
		}
		rec.Photo = resume.Photo(data)
	}

	variant := resume.Variant(opts.variant)
	if variant == "" {
		variant = rec.Template
	}
	theme := resume.Theme(opts.theme)
	if theme == "" {
		theme = rec.BackgroundTheme
	}
	doc, err := c.Compose(rec, variant, theme)
	if err != nil {
		return "", fmt.Errorf("排版失败: %w", err)
	}

	if opts.debug != "" {
		if err := writeDebug(doc.Result, opts.debug); err != nil {
			return "", err
		}
	}

	exporter := &export.Exporter{Renderer: r}
	fileName := ""
	switch {
	case opts.output != "":
		exporter.Sink = export.FileSink{Dir: filepath.Dir(opts.output)}
		fileName = filepath.Base(opts.output)
	case cfg.UsesS3():
		sink, err := export.NewS3Sink(ctx, cfg.S3)
		if err != nil {
			return "", err
		}
		exporter.Sink = sink
	default:
		exporter.Sink = export.FileSink{Dir: cfg.ExportDir}
	}
	return exporter.Save(ctx, doc, fileName)
}

func readRecord(path string, legacy bool) (*resume.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("读取简历失败: %w", err)
	}
	if legacy {
		return resume.DecodeLegacyJSON(data)
	}
	return resume.DecodeJSON(data)
}

func runServer(cfg config.Config, c *composer.Composer, r *canvasrenderer.Renderer) error {
	ctx := context.Background()
	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pg.Close()
		st = pg
	} else {
		slog.Warn("DATABASE_URL not set, resumes are kept in memory")
		st = store.NewMemoryStore()
	}

	srv := &server.Server{
		Composer: c,
		Exporter: &export.Exporter{Renderer: r},
		Store:    st,
	}
	slog.Info("listening", "port", cfg.Port)
	return srv.App().Listen(":" + cfg.Port)
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	f, err := os.Create(debugPath)
	if err != nil {
		return fmt.Errorf("创建调试文件失败: %w", err)
	}
	defer f.Close()
	if err := layout.WriteDebugJSON(result, f); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
