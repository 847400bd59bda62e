package composer

// Labels 是文档中出现的固定文字。
type Labels struct {
	Contact     string
	Address     string
	Summary     string
	Skills      string
	Technical   string
	Personal    string
	Education   string
	Experience  string
	Course      string
	Institution string
	Role        string
	Company     string
	Period      string
	Email       string
	Phone       string
	PostalCode  string
	// Current 替换在职经历的结束时间。
	Current string
	// NotInformed 是空字段的占位文字。
	NotInformed string
}

// PortugueseLabels 是默认标签。
func PortugueseLabels() Labels {
	return Labels{
		Contact:     "Contato",
		Address:     "Endereço",
		Summary:     "Resumo Profissional",
		Skills:      "Habilidades",
		Technical:   "Técnicas",
		Personal:    "Pessoais",
		Education:   "Formação Acadêmica",
		Experience:  "Experiência Profissional",
		Course:      "Curso",
		Institution: "Instituição de Ensino",
		Role:        "Cargo",
		Company:     "Empresa",
		Period:      "Período",
		Email:       "Email",
		Phone:       "Telefone",
		PostalCode:  "CEP",
		Current:     "Atualmente",
		NotInformed: "Não informado",
	}
}

func EnglishLabels() Labels {
	return Labels{
		Contact:     "Contact",
		Address:     "Address",
		Summary:     "Professional Summary",
		Skills:      "Skills",
		Technical:   "Technical",
		Personal:    "Personal",
		Education:   "Education",
		Experience:  "Experience",
		Course:      "Course",
		Institution: "Institution",
		Role:        "Role",
		Company:     "Company",
		Period:      "Period",
		Email:       "Email",
		Phone:       "Phone",
		PostalCode:  "Postal code",
		Current:     "Present",
		NotInformed: "Not informed",
	}
}

// set 按 profile 中的键名修改标签，未知键返回 false。
func (l *Labels) set(key, value string) bool {
	fields := map[string]*string{
		"contact":      &l.Contact,
		"address":      &l.Address,
		"summary":      &l.Summary,
		"skills":       &l.Skills,
		"technical":    &l.Technical,
		"personal":     &l.Personal,
		"education":    &l.Education,
		"experience":   &l.Experience,
		"course":       &l.Course,
		"institution":  &l.Institution,
		"role":         &l.Role,
		"company":      &l.Company,
		"period":       &l.Period,
		"email":        &l.Email,
		"phone":        &l.Phone,
		"postal-code":  &l.PostalCode,
		"current":      &l.Current,
		"not-informed": &l.NotInformed,
	}
	p, ok := fields[key]
	if ok {
		*p = value
	}
	return ok
}
