// Package server 通过 HTTP 提供简历的排版、下载与保存。
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ByLCY/curriculo/auth"
	"github.com/ByLCY/curriculo/composer"
	"github.com/ByLCY/curriculo/export"
	"github.com/ByLCY/curriculo/resume"
	"github.com/ByLCY/curriculo/store"
)

const (
	userIDHeader    = "X-User-ID"
	userEmailHeader = "X-User-Email"
)

// Server 持有 HTTP 处理所需的协作者。
type Server struct {
	Composer *composer.Composer
	Exporter *export.Exporter
	Store    store.Store
	Logger   *slog.Logger
}

// App 创建 fiber 应用并注册路由。
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
		BodyLimit:             8 * 1024 * 1024,
	})
	app.Use(identify)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/render", s.render)

	resumes := api.Group("/resumes", requireUser)
	resumes.Post("/", s.create)
	resumes.Get("/", s.list)
	resumes.Get("/:id/pdf", s.download)
	resumes.Delete("/:id", s.remove)
	return app
}

// identify 把上游网关写入的用户头放进请求 context。
func identify(c *fiber.Ctx) error {
	if id := strings.TrimSpace(c.Get(userIDHeader)); id != "" {
		user := auth.User{ID: id, Email: c.Get(userEmailHeader)}
		c.SetUserContext(auth.WithUser(c.UserContext(), user))
	}
	return c.Next()
}

func requireUser(c *fiber.Ctx) error {
	if _, err := auth.FromContext(c.UserContext()); err != nil {
		return err
	}
	return c.Next()
}

// render 排版请求体中的简历并直接返回 PDF，不保存。
func (s *Server) render(c *fiber.Ctx) error {
	rec, err := resume.DecodeJSON(c.Body())
	if err != nil {
		return err
	}
	return s.sendPDF(c, rec)
}

func (s *Server) create(c *fiber.Ctx) error {
	user, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}
	rec, err := resume.DecodeJSON(c.Body())
	if err != nil {
		return err
	}
	id, err := s.Store.Save(c.UserContext(), user.ID, rec)
	if err != nil {
		return err
	}
	s.logger().Info("resume saved", "id", id, "user", user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) list(c *fiber.Ctx) error {
	user, err := auth.FromContext(c.UserContext())
	if err != nil {
		return err
	}
	entries, err := s.Store.List(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	return c.JSON(entries)
}

func (s *Server) download(c *fiber.Ctx) error {
	entry, err := s.owned(c)
	if err != nil {
		return err
	}
	return s.sendPDF(c, &entry.Record)
}

func (s *Server) remove(c *fiber.Ctx) error {
	entry, err := s.owned(c)
	if err != nil {
		return err
	}
	if err := s.Store.Delete(c.UserContext(), entry.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// owned 读取当前用户的记录；属于其他用户的记录按不存在处理。
func (s *Server) owned(c *fiber.Ctx) (*store.Entry, error) {
	user, err := auth.FromContext(c.UserContext())
	if err != nil {
		return nil, err
	}
	entry, err := s.Store.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if entry.UserID != user.ID {
		return nil, &store.PersistenceError{Op: "get", Err: store.ErrNotFound}
	}
	return entry, nil
}

// sendPDF 按查询参数（缺省时取记录中的 template/backgroundTheme）排版并返回附件。
func (s *Server) sendPDF(c *fiber.Ctx, rec *resume.Record) error {
	variant := resume.Variant(c.Query("variant", string(rec.Template)))
	theme := resume.Theme(c.Query("theme", string(rec.BackgroundTheme)))
	doc, err := s.Composer.Compose(rec, variant, theme)
	if err != nil {
		return err
	}
	data, err := s.Exporter.Render(doc)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName()))
	return c.Send(data)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		s.logger().Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	var (
		fe *fiber.Error
		ve *resume.ValidationError
		pe *store.PersistenceError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, auth.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &pe):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
