package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/curriculo/dsl"
	"github.com/google/go-cmp/cmp"
)

const sampleProfile = `
// perfil corporativo
profile Corporate v1 {
  page {
    width: 210mm; height: 297mm
  }

  classic {
    margin: 18mm
    title-size: 24pt
    dividers: false
  }

  theme blue {
    primary: #1565C0  # azul escuro
    secondary: #90CAF9
  }

  labels {
    contact: "Fale comigo"
    current: "Presente"
  }

  meta {
    keywords: [
      "cv",
      "resume"
    ]
  }
}
`

func TestParseProfile(t *testing.T) {
	doc, err := dsl.ParseString(sampleProfile)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Name != "Corporate" || doc.Version != "v1" {
		t.Fatalf("unexpected header: %s %s", doc.Name, doc.Version)
	}
	if len(doc.Sections) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(doc.Sections))
	}

	page := doc.Sections[0]
	if page.Kind != "page" || page.Name != "" || len(page.Block.Assignments) != 2 {
		t.Fatalf("unexpected page section: %+v", page)
	}
	if got := page.Block.Assignments[1].Value.Text(); got != "297mm" {
		t.Fatalf("expected 297mm, got %s", got)
	}

	classic := doc.Sections[1]
	dividers := classic.Block.Assignments[2]
	if dividers.Key != "dividers" {
		t.Fatalf("expected dividers key, got %s", dividers.Key)
	}
	if on, err := dividers.Value.Bool(); err != nil || on {
		t.Fatalf("dividers should parse as false: %v %v", on, err)
	}

	theme := doc.Sections[2]
	if theme.Kind != "theme" || theme.Name != "blue" {
		t.Fatalf("unexpected theme header: %s %s", theme.Kind, theme.Name)
	}
	if c := theme.Block.Assignments[0].Value.Color; c == nil || *c != "#1565C0" {
		t.Fatalf("primary color not captured: %+v", theme.Block.Assignments[0].Value)
	}
	if len(theme.Block.Assignments) != 2 {
		t.Fatalf("hash comment should be elided, got %d assignments", len(theme.Block.Assignments))
	}

	labels := doc.Sections[3]
	if got := labels.Block.Assignments[0].Value.Text(); got != "Fale comigo" {
		t.Fatalf("unexpected label: %s", got)
	}

	keywords := doc.Sections[4].Block.Assignments[0].Value
	if diff := cmp.Diff([]string{"cv", "resume"}, keywords.Strings()); diff != "" {
		t.Fatalf("keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrorsCarryPosition(t *testing.T) {
	_, err := dsl.Parse(strings.NewReader("profile Broken {\n  classic {\n    margin 15mm\n  }\n}\n"))
	if err == nil {
		t.Fatalf("missing colon should fail")
	}
	if !strings.Contains(err.Error(), "3:") {
		t.Fatalf("error should point at line 3, got %v", err)
	}
}

func TestValueBoolRejectsNonBoolean(t *testing.T) {
	doc, err := dsl.ParseString(`profile P { classic { dividers: maybe } }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := doc.Sections[0].Block.Assignments[0].Value.Bool(); err == nil {
		t.Fatalf("maybe is not a boolean")
	}
}
