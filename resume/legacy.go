package resume

import (
	"encoding/json"
	"fmt"
)

// legacyRecord 是早期版本以葡萄牙语扁平字段保存的简历。
type legacyRecord struct {
	Nome                string  `json:"nome"`
	Email               string  `json:"email"`
	Telefone            string  `json:"telefone"`
	Cidade              string  `json:"cidade"`
	Estado              string  `json:"estado"`
	CEP                 string  `json:"cep"`
	Rua                 string  `json:"rua"`
	Numero              string  `json:"numero"`
	Resumo              string  `json:"resumo"`
	FormacaoInstituicao string  `json:"formacaoInstituicao"`
	FormacaoCurso       string  `json:"formacaoCurso"`
	FormacaoInicio      string  `json:"formacaoInicio"`
	FormacaoTermino     string  `json:"formacaoTermino"`
	FormacaoDescricao   string  `json:"formacaoDescricao"`
	ExpEmpresa          string  `json:"expEmpresa"`
	ExpCargo            string  `json:"expCargo"`
	ExpInicio           string  `json:"expInicio"`
	ExpTermino          string  `json:"expTermino"`
	ExpAtual            bool    `json:"expAtual"`
	ExpDescricao        string  `json:"expDescricao"`
	SemExperiencia      bool    `json:"semExperiencia"`
	HabilidadesTecnicas string  `json:"habilidadesTecnicas"`
	HabilidadesPessoais string  `json:"habilidadesPessoais"`
	Foto                *string `json:"foto"`
	Template            string  `json:"template"`
	BackgroundColor     string  `json:"backgroundColor"`
}

// DecodeLegacyJSON 读取旧版字段名（nome、telefone、expAtual…）保存的简历。
// 电话统一套用掩码；无法识别的 template/backgroundColor 会被置空，由排版时回落到默认值。
func DecodeLegacyJSON(data []byte) (*Record, error) {
	var l legacyRecord
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("malformed legacy json: %v", err)}
	}
	// 旧表单只接受巴西号码，保存时可能只有数字
	if err := CheckPhone(l.Telefone); err != nil {
		return nil, err
	}
	rec := &Record{
		Name:  l.Nome,
		Email: l.Email,
		Phone: FormatPhone(l.Telefone),
		Address: Address{
			Street:     l.Rua,
			Number:     l.Numero,
			City:       l.Cidade,
			State:      l.Estado,
			PostalCode: l.CEP,
		},
		Summary:         l.Resumo,
		SkillsTechnical: l.HabilidadesTecnicas,
		SkillsPersonal:  l.HabilidadesPessoais,
		Education: Education{
			Institution: l.FormacaoInstituicao,
			Course:      l.FormacaoCurso,
			StartPeriod: l.FormacaoInicio,
			EndPeriod:   l.FormacaoTermino,
			Description: l.FormacaoDescricao,
		},
		Experience: Experience{
			Company:     l.ExpEmpresa,
			Role:        l.ExpCargo,
			StartPeriod: l.ExpInicio,
			EndPeriod:   l.ExpTermino,
			IsCurrent:   l.ExpAtual,
			Description: l.ExpDescricao,
		},
		HasNoExperience: l.SemExperiencia,
	}
	if v, ok := ParseVariant(l.Template); ok {
		rec.Template = v
	}
	if t, ok := ParseTheme(l.BackgroundColor); ok {
		rec.BackgroundTheme = t
	}
	if l.Foto != nil {
		photo, err := DecodePhoto(*l.Foto)
		if err != nil {
			return nil, &ValidationError{Field: "foto", Reason: err.Error()}
		}
		rec.Photo = photo
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
