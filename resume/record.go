// Package resume 定义简历记录（ResumeRecord）及其解析、校验与格式化工具。
package resume

import "strings"

// Variant 是可选的版式。
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantModern  Variant = "modern"
)

// Theme 是现代版式侧边栏的配色。
type Theme string

const (
	ThemeBlue  Theme = "blue"
	ThemeGreen Theme = "green"
	ThemeRed   Theme = "red"
)

// ParseVariant 识别版式名称，兼容旧数据中的 template1/template2。
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "classico", "clássico", "template1":
		return VariantClassic, true
	case "modern", "moderno", "template2":
		return VariantModern, true
	default:
		return "", false
	}
}

// ParseTheme 识别配色名称，兼容旧数据中的 azul/verde/vermelho。
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "azul":
		return ThemeBlue, true
	case "green", "verde":
		return ThemeGreen, true
	case "red", "vermelho":
		return ThemeRed, true
	default:
		return "", false
	}
}

// Address 是联系地址。
type Address struct {
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Education 只支持一条教育经历。
type Education struct {
	Institution string `json:"institution,omitempty"`
	Course      string `json:"course,omitempty"`
	StartPeriod string `json:"startPeriod,omitempty"`
	EndPeriod   string `json:"endPeriod,omitempty"`
	Description string `json:"description,omitempty"`
}

// Experience 只支持一条工作经历。IsCurrent 为 true 时忽略 EndPeriod。
type Experience struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	StartPeriod string `json:"startPeriod,omitempty"`
	EndPeriod   string `json:"endPeriod,omitempty"`
	IsCurrent   bool   `json:"isCurrent,omitempty"`
	Description string `json:"description,omitempty"`
}

// Record 是一次排版的输入。排版过程只读，不会修改它。
type Record struct {
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         Address    `json:"address"`
	Summary         string     `json:"summary,omitempty"`
	SkillsTechnical string     `json:"skillsTechnical,omitempty"`
	SkillsPersonal  string     `json:"skillsPersonal,omitempty"`
	Education       Education  `json:"education"`
	Experience      Experience `json:"experience"`
	// HasNoExperience 为 true 时整个工作经历区块被省略。
	HasNoExperience bool    `json:"hasNoExperience,omitempty"`
	Photo           Photo   `json:"photo,omitempty"`
	Template        Variant `json:"template,omitempty"`
	BackgroundTheme Theme   `json:"backgroundTheme,omitempty"`
}

// TechnicalSkills 返回解析后的技术技能列表。
func (r *Record) TechnicalSkills() []string { return ParseSkills(r.SkillsTechnical) }

// PersonalSkills 返回解析后的个人技能列表。
func (r *Record) PersonalSkills() []string { return ParseSkills(r.SkillsPersonal) }

// ShowsExperience 报告工作经历区块是否参与排版。
func (r *Record) ShowsExperience() bool { return !r.HasNoExperience }

// ExperienceEnd 返回展示用的结束时间：在职时返回 currentLabel。
func (r *Record) ExperienceEnd(currentLabel string) string {
	if r.Experience.IsCurrent {
		return currentLabel
	}
	return r.Experience.EndPeriod
}

// ParseSkills 以逗号拆分技能，去掉首尾空白并丢弃空项，保持原有顺序。
func ParseSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}
