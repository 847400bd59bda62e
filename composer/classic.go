package composer

import (
	"strings"

	"github.com/ByLCY/curriculo/binding"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

// classicLayout 是全宽单栏版式，不绘制照片。
type classicLayout struct{}

func (classicLayout) compose(w *writer, rec *resume.Record, _ resume.Theme) error {
	m := w.cfg.Classic
	l := w.cfg.Labels
	width := w.cfg.PageWidth - m.MarginLeft - m.MarginRight
	f := w.frame(layout.ColumnMain, m.MarginLeft, width, m.StartY)

	body := style{role: "body", font: w.cfg.Regular, size: m.BodySize, color: layout.Black}
	heading := style{role: "heading", font: w.cfg.Bold, size: m.BodySize, color: layout.Black}
	para := func(content string, st style, trail float64) error {
		_, err := w.place(f, block{x: f.X, width: f.Width, content: content, style: st, lineHeight: m.LineHeight, trail: trail})
		return err
	}
	valueBlock := func(content string) block {
		return block{content: content, style: body, lineHeight: m.LineHeight, trail: m.LineHeight}
	}

	// 姓名
	title := style{role: "name", font: w.cfg.Bold, size: m.TitleSize, color: layout.Black, align: "center"}
	if _, err := w.place(f, block{x: f.X, width: f.Width, content: strings.TrimSpace(rec.Name), style: title, lineHeight: m.TitleSpacing, trail: m.TitleSpacing}); err != nil {
		return err
	}
	if m.Dividers {
		w.divider(f, m.SectionSpacing)
	} else {
		f.Advance(m.SectionSpacing)
	}

	// 联系方式与地址
	fields := binding.Fields{
		"email":      rec.Email,
		"phone":      rec.Phone,
		"street":     rec.Address.Street,
		"number":     rec.Address.Number,
		"city":       rec.Address.City,
		"state":      rec.Address.State,
		"postalCode": rec.Address.PostalCode,
	}
	contact := binding.Interpolate(l.Email+": ${email} | "+l.Phone+": ${phone}", fields, l.NotInformed)
	if err := w.labeled(f, l.Contact+":", m.LabelIndent, valueBlock(contact)); err != nil {
		return err
	}
	addrTmpl := "${street}, ${number} - ${city} - ${state}"
	if m.ShowPostalCode && strings.TrimSpace(rec.Address.PostalCode) != "" {
		addrTmpl += " - " + l.PostalCode + ": ${postalCode}"
	}
	addr := valueBlock(binding.Interpolate(addrTmpl, fields, l.NotInformed))
	addr.trail = m.SectionSpacing
	if err := w.labeled(f, l.Address+":", m.LabelIndent, addr); err != nil {
		return err
	}
	w.divider(f, m.SectionSpacing)

	// 摘要
	if strings.TrimSpace(rec.Summary) != "" {
		if err := para(l.Summary+":", heading, m.LineHeight); err != nil {
			return err
		}
		if err := para(rec.Summary, body, m.LineHeight); err != nil {
			return err
		}
		f.Advance(m.SectionSpacing)
		w.divider(f, m.SectionSpacing)
	}

	// 技能
	tech, personal := rec.TechnicalSkills(), rec.PersonalSkills()
	if len(tech) > 0 || len(personal) > 0 {
		if err := para(l.Skills, heading, m.LineHeight); err != nil {
			return err
		}
		for _, group := range []struct {
			label  string
			skills []string
		}{{l.Technical, tech}, {l.Personal, personal}} {
			if len(group.skills) == 0 {
				continue
			}
			if err := w.labeled(f, group.label+":", m.LabelIndent, valueBlock(joinSkills(group.skills))); err != nil {
				return err
			}
		}
		f.Advance(m.SectionSpacing)
		w.divider(f, m.SectionSpacing)
	}

	// 教育经历：仅在填写了课程时出现
	edu := rec.Education
	if strings.TrimSpace(edu.Course) != "" {
		eduFields := binding.Fields{
			"course":      edu.Course,
			"institution": edu.Institution,
			"start":       edu.StartPeriod,
			"end":         edu.EndPeriod,
		}
		if err := para(l.Education+":", heading, m.LineHeight); err != nil {
			return err
		}
		lines := []string{
			binding.Interpolate(l.Course+": ${course}", eduFields, l.NotInformed),
			binding.Interpolate(l.Institution+": ${institution}", eduFields, l.NotInformed),
			binding.Interpolate("${start} - ${end}", eduFields, l.NotInformed),
			edu.Description,
		}
		for _, line := range lines {
			if err := para(line, body, m.LineHeight); err != nil {
				return err
			}
		}
		f.Advance(m.SectionSpacing)
		w.divider(f, m.SectionSpacing)
	}

	// 工作经历
	if rec.ShowsExperience() {
		exp := rec.Experience
		expFields := binding.Fields{
			"role":    exp.Role,
			"company": exp.Company,
			"start":   exp.StartPeriod,
			"end":     rec.ExperienceEnd(l.Current),
		}
		if err := para(l.Experience+":", heading, m.LineHeight); err != nil {
			return err
		}
		lines := []string{
			binding.Interpolate(l.Role+": ${role}", expFields, l.NotInformed),
			binding.Interpolate(l.Company+": ${company}", expFields, l.NotInformed),
			binding.Interpolate("${start} - ${end}", expFields, l.NotInformed),
			exp.Description,
		}
		for _, line := range lines {
			if err := para(line, body, m.LineHeight); err != nil {
				return err
			}
		}
	}
	return nil
}
