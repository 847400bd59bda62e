package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ByLCY/curriculo/composer"
	"github.com/ByLCY/curriculo/export"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/renderer"
	canvasrenderer "github.com/ByLCY/curriculo/renderer/canvas"
	"github.com/ByLCY/curriculo/resume"
	"github.com/ByLCY/curriculo/store"
)

const anaJSON = `{
  "name": "Ana Silva",
  "email": "ana@example.com",
  "summary": "Desenvolvedora backend.",
  "skillsTechnical": "Go, SQL",
  "education": {"institution": "USP", "course": "Computação", "startPeriod": "2015-02", "endPeriod": "2019-12"},
  "template": "modern",
  "backgroundTheme": "green"
}`

func newTestServer(st store.Store, r renderer.Renderer) *Server {
	canvas := canvasrenderer.NewRenderer()
	if r == nil {
		r = canvas
	}
	c := composer.New(canvas)
	c.Now = func() time.Time { return time.UnixMilli(1700000000000) }
	return &Server{Composer: c, Exporter: &export.Exporter{Renderer: r}, Store: st}
}

func do(t *testing.T, s *Server, method, target, body, user string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(userIDHeader, user)
	}
	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("错误响应不是 JSON: %v", err)
	}
	return body.Error
}

func TestHealthz(t *testing.T) {
	resp := do(t, newTestServer(store.NewMemoryStore(), nil), http.MethodGet, "/healthz", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d", resp.StatusCode)
	}
}

func TestRenderReturnsPDFAttachment(t *testing.T) {
	s := newTestServer(store.NewMemoryStore(), nil)
	resp := do(t, s, http.MethodPost, "/api/render?variant=classic", anaJSON, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("render status = %d: %s", resp.StatusCode, errorMessage(t, resp))
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %s", got)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "curriculo_Ana_Silva_1700000000000.pdf") {
		t.Fatalf("content disposition = %s", got)
	}
	data, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Fatalf("响应不是 PDF")
	}
}

func TestRenderRejectsInvalidRecord(t *testing.T) {
	s := newTestServer(store.NewMemoryStore(), nil)
	resp := do(t, s, http.MethodPost, "/api/render", `{"name": "   "}`, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("空姓名应返回 400, got %d", resp.StatusCode)
	}
	resp = do(t, s, http.MethodPost, "/api/render", `{"name": "Ana", "education": {"startPeriod": "2020/01"}}`, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("非法年月应返回 400, got %d", resp.StatusCode)
	}
}

func TestRenderFailureIs500(t *testing.T) {
	failing := renderer.Func(func(*layout.Result) ([]byte, error) { return nil, errors.New("boom") })
	s := newTestServer(store.NewMemoryStore(), failing)
	resp := do(t, s, http.MethodPost, "/api/render", anaJSON, "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("渲染失败应返回 500, got %d", resp.StatusCode)
	}
}

func TestResumesRequireUser(t *testing.T) {
	s := newTestServer(store.NewMemoryStore(), nil)
	resp := do(t, s, http.MethodGet, "/api/resumes", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("缺少用户应返回 401, got %d", resp.StatusCode)
	}
}

func TestResumeLifecycle(t *testing.T) {
	s := newTestServer(store.NewMemoryStore(), nil)

	resp := do(t, s, http.MethodPost, "/api/resumes", anaJSON, "u1")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil || created.ID == "" {
		t.Fatalf("create 响应错误: %+v %v", created, err)
	}

	resp = do(t, s, http.MethodGet, "/api/resumes", "", "u1")
	var entries []store.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatalf("list decode: %v", err)
	}
	if len(entries) != 1 || entries[0].Record.Name != "Ana Silva" || entries[0].Record.Template != resume.VariantModern {
		t.Fatalf("list 结果错误: %+v", entries)
	}

	resp = do(t, s, http.MethodGet, "/api/resumes/"+created.ID+"/pdf", "", "u2")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("其他用户的记录应返回 404, got %d", resp.StatusCode)
	}

	resp = do(t, s, http.MethodGet, "/api/resumes/"+created.ID+"/pdf", "", "u1")
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" {
		t.Fatalf("download status = %d", resp.StatusCode)
	}

	resp = do(t, s, http.MethodDelete, "/api/resumes/"+created.ID, "", "u1")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp = do(t, s, http.MethodDelete, "/api/resumes/"+created.ID, "", "u1")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("重复删除应返回 404, got %d", resp.StatusCode)
	}
}

func TestStoreFailureIs502(t *testing.T) {
	s := newTestServer(brokenStore{}, nil)
	resp := do(t, s, http.MethodGet, "/api/resumes", "", "u1")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("存储失败应返回 502, got %d", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); !strings.Contains(msg, "connection refused") {
		t.Fatalf("错误信息应包含原因: %s", msg)
	}
}

type brokenStore struct{}

func (brokenStore) fail(op string) error {
	return &store.PersistenceError{Op: op, Err: errors.New("connection refused")}
}

func (b brokenStore) Save(context.Context, string, *resume.Record) (string, error) {
	return "", b.fail("save")
}

func (b brokenStore) List(context.Context, string) ([]store.Entry, error) { return nil, b.fail("list") }

func (b brokenStore) Get(context.Context, string) (*store.Entry, error) { return nil, b.fail("get") }

func (b brokenStore) Delete(context.Context, string) error { return b.fail("delete") }
