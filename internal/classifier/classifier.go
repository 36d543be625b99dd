package classifier

import (
	"regexp"
	"strings"

	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

// Line é uma linha de arquivo fonte já posicionada.
type Line struct {
	Text   string
	Number int
	File   string
}

type rule struct {
	kind model.Kind
	re   *regexp.Regexp
}

// RuleSet avalia as regras em ordem fixa de prioridade; a primeira que
// casar com o payload vence.
type RuleSet struct {
	rules  []rule
	closer *regexp.Regexp
}

const (
	labeledKeywords = `resource|data|module`
	namedKeywords   = `variable|output|provider|locals|terraform`
)

// NewRuleSet monta o resolvedor de regras. Palavras-chave extras (vindas
// da configuração) entram na regra de declarações nomeadas.
func NewRuleSet(extraKeywords ...string) *RuleSet {
	named := namedKeywords
	for _, kw := range extraKeywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			named += "|" + regexp.QuoteMeta(kw)
		}
	}
	return &RuleSet{
		rules: []rule{
			{model.KindResource, regexp.MustCompile(`^(` + labeledKeywords + `)\s+"[^"]+"(\s+"[^"]+")?\s*\{`)},
			{model.KindVariable, regexp.MustCompile(`^(` + named + `)(\s+"[^"]+")?\s*\{`)},
			{model.KindBlock, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\s+"[^"]+")?\s*\{`)},
			{model.KindAssignment, regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*\s*=\s*\S`)},
		},
		closer: regexp.MustCompile(`^\}\s*$`),
	}
}

// CommentPayload devolve o conteúdo da linha como se o marcador de
// comentário (# ou //) não existisse. ok=false quando a linha não é
// comentário.
func CommentPayload(text string) (string, bool) {
	t := strings.TrimLeft(text, " \t")
	switch {
	case strings.HasPrefix(t, "#"):
		return strings.TrimSpace(t[1:]), true
	case strings.HasPrefix(t, "//"):
		return strings.TrimSpace(t[2:]), true
	}
	return "", false
}

// Match testa o payload contra as regras em ordem de prioridade.
func (rs *RuleSet) Match(payload string) (model.Kind, bool) {
	for _, r := range rs.rules {
		if r.re.MatchString(payload) {
			return r.kind, true
		}
	}
	return "", false
}

// IsCloser reconhece o fechamento puro de bloco ("}"). Serve apenas à
// contagem de profundidade; nunca gera achado isolado.
func (rs *RuleSet) IsCloser(payload string) bool {
	return rs.closer.MatchString(payload)
}

// Classify decide se uma única linha representa código comentado.
// Linhas que não são comentário retornam nil sem avaliar regra alguma
// (caminho rápido). Classificação nunca falha: sem regra, sem achado.
func (rs *RuleSet) Classify(l Line) *model.Finding {
	payload, ok := CommentPayload(l.Text)
	if !ok {
		return nil
	}
	if rs.IsCloser(payload) {
		return nil
	}
	kind, ok := rs.Match(payload)
	if !ok {
		return nil
	}
	f := NewFinding(kind, l.File, l.Number, l.Text)
	return &f
}

// NewFinding preenche um achado a partir do tipo e da posição.
func NewFinding(kind model.Kind, file string, line int, text string) model.Finding {
	return model.Finding{
		Kind:      kind,
		RuleID:    model.RuleIDFor(kind),
		Message:   messageFor(kind),
		FilePath:  file,
		StartLine: line,
		Text:      text,
	}
}

func messageFor(k model.Kind) string {
	switch k {
	case model.KindResource:
		return "Bloco de recurso Terraform comentado"
	case model.KindVariable:
		return "Declaração Terraform comentada"
	case model.KindBlock:
		return "Bloco Terraform comentado"
	default:
		return "Atribuição Terraform comentada"
	}
}
