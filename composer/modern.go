package composer

import (
	"strings"

	"github.com/ByLCY/curriculo/binding"
	"github.com/ByLCY/curriculo/layout"
	"github.com/ByLCY/curriculo/resume"
)

const photoRef = "photo"

// modernLayout 左侧为主题色侧边栏（照片、联系方式、地址），右侧为主栏。
// 两栏的游标各自推进，各自分页。
type modernLayout struct{}

func (modernLayout) compose(w *writer, rec *resume.Record, theme resume.Theme) error {
	m := w.cfg.Modern
	pal := w.cfg.palette(theme)
	w.pages.SetBackground(
		layout.Rect{X: 0, Y: 0, Width: m.SidebarWidth, Height: w.cfg.PageHeight, FillColor: pal.Primary.Ptr()},
		layout.Rect{X: 0, Y: 0, Width: m.SidebarWidth, Height: m.BandHeight, FillColor: pal.Secondary.Ptr()},
	)

	side := w.frame(layout.ColumnSidebar, m.SidebarPadding, m.SidebarWidth-2*m.SidebarPadding, m.StartY)
	if err := w.sidebar(side, rec); err != nil {
		return err
	}
	mainCol := w.frame(layout.ColumnMain, m.MainX, m.MainWidth, m.StartY)
	return w.mainColumn(mainCol, rec)
}

func (w *writer) sidebar(f *layout.Frame, rec *resume.Record) error {
	m := w.cfg.Modern
	l := w.cfg.Labels

	if len(rec.Photo) > 0 {
		data, circular := w.cropper.Crop(rec.Photo, m.PhotoPixels)
		w.resources.Images[photoRef] = layout.ImageResource{Name: photoRef, Data: data, Circular: circular}
		f.EnsureSpace(m.PhotoSize)
		if m.PhotoRing > 0 {
			f.AddCircle(layout.Circle{
				CX:        m.SidebarWidth / 2,
				CY:        f.Y() + m.PhotoSize/2,
				R:         m.PhotoSize/2 + m.PhotoRing,
				FillColor: layout.White.Ptr(),
			})
		}
		f.AddImage(layout.ImageBox{
			Ref:    photoRef,
			X:      m.SidebarWidth/2 - m.PhotoSize/2,
			Y:      f.Y(),
			Width:  m.PhotoSize,
			Height: m.PhotoSize,
		})
		f.Advance(m.PhotoSize + m.LargeSpacing)
	}

	head := style{role: "heading", font: w.cfg.Bold, size: m.SidebarHeadSize, color: layout.White, align: "center"}
	text := style{role: "sidebar", font: w.cfg.Regular, size: m.SidebarBodySize, color: layout.White, align: "center"}
	put := func(content string, st style, trail float64) error {
		_, err := w.place(f, block{x: f.X, width: f.Width, content: content, style: st, lineHeight: m.SidebarLineHeight, trail: trail})
		return err
	}

	if err := put(l.Contact, head, m.MediumSpacing); err != nil {
		return err
	}
	if strings.TrimSpace(rec.Email) != "" {
		if err := put(rec.Email, text, m.SidebarLineHeight); err != nil {
			return err
		}
		f.Advance(m.SmallSpacing)
	}
	if strings.TrimSpace(rec.Phone) != "" {
		if err := put(rec.Phone, text, m.SidebarLineHeight); err != nil {
			return err
		}
		f.Advance(m.MediumSpacing)
	}

	fields := binding.Fields{
		"street": rec.Address.Street,
		"number": rec.Address.Number,
		"city":   rec.Address.City,
		"state":  rec.Address.State,
	}
	if err := put(l.Address, head, m.MediumSpacing); err != nil {
		return err
	}
	if err := put(binding.Interpolate("${street}, ${number}", fields, l.NotInformed), text, m.SidebarLineHeight); err != nil {
		return err
	}
	f.Advance(m.SmallSpacing)
	return put(binding.Interpolate("${city} - ${state}", fields, l.NotInformed), text, m.SidebarLineHeight)
}

func (w *writer) mainColumn(f *layout.Frame, rec *resume.Record) error {
	m := w.cfg.Modern
	l := w.cfg.Labels

	heading := style{role: "heading", font: w.cfg.Bold, size: m.SectionSize, color: layout.Black}
	label := style{role: "label", font: w.cfg.Bold, size: m.BodySize, color: layout.Black}
	body := style{role: "body", font: w.cfg.Regular, size: m.BodySize, color: layout.Black}
	put := func(content string, st style) error {
		_, err := w.place(f, block{x: f.X, width: f.Width, content: content, style: st, lineHeight: m.LineHeight, trail: m.LineHeight})
		return err
	}
	putAll := func(lines ...string) error {
		for _, line := range lines {
			if err := put(line, body); err != nil {
				return err
			}
		}
		return nil
	}

	title := style{role: "name", font: w.cfg.Bold, size: m.TitleSize, color: layout.Black, align: "left"}
	if _, err := w.place(f, block{x: f.X, width: f.Width, content: strings.TrimSpace(rec.Name), style: title, lineHeight: m.TitleSpacing, trail: m.TitleSpacing}); err != nil {
		return err
	}
	f.Advance(m.SectionSpacing)

	if strings.TrimSpace(rec.Summary) != "" {
		if err := put(l.Summary, heading); err != nil {
			return err
		}
		if err := put(rec.Summary, body); err != nil {
			return err
		}
		f.Advance(m.BlockSpacing)
	}

	tech, personal := rec.TechnicalSkills(), rec.PersonalSkills()
	if len(tech) > 0 || len(personal) > 0 {
		if err := put(l.Skills, heading); err != nil {
			return err
		}
		for _, group := range []struct {
			label  string
			skills []string
		}{{l.Technical, tech}, {l.Personal, personal}} {
			if len(group.skills) == 0 {
				continue
			}
			if err := put(group.label+":", label); err != nil {
				return err
			}
			if err := put(joinSkills(group.skills), body); err != nil {
				return err
			}
		}
		f.Advance(m.BlockSpacing)
	}

	edu := rec.Education
	if strings.TrimSpace(edu.Course) != "" {
		fields := binding.Fields{"course": edu.Course, "institution": edu.Institution, "start": edu.StartPeriod, "end": edu.EndPeriod}
		if err := put(l.Education, heading); err != nil {
			return err
		}
		if err := putAll(
			binding.Interpolate(l.Course+": ${course}", fields, l.NotInformed),
			binding.Interpolate(l.Institution+": ${institution}", fields, l.NotInformed),
			binding.Interpolate(l.Period+": ${start} - ${end}", fields, l.NotInformed),
			edu.Description,
		); err != nil {
			return err
		}
		f.Advance(m.BlockSpacing)
	}

	exp := rec.Experience
	if rec.ShowsExperience() && strings.TrimSpace(exp.Role) != "" {
		fields := binding.Fields{"role": exp.Role, "company": exp.Company, "start": exp.StartPeriod, "end": rec.ExperienceEnd(l.Current)}
		if err := put(l.Experience, heading); err != nil {
			return err
		}
		if err := putAll(
			binding.Interpolate(l.Role+": ${role}", fields, l.NotInformed),
			binding.Interpolate(l.Company+": ${company}", fields, l.NotInformed),
			binding.Interpolate(l.Period+": ${start} - ${end}", fields, l.NotInformed),
			exp.Description,
		); err != nil {
			return err
		}
	}
	return nil
}
