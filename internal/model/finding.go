package model

type Kind string

const (
	KindResource   Kind = "resource"
	KindVariable   Kind = "variable"
	KindBlock      Kind = "block"
	KindAssignment Kind = "assignment"
)

type Finding struct {
	Kind      Kind   // tipo de construção detectada
	RuleID    string // ex: "commented-resource"
	Message   string // descrição curta
	FilePath  string // caminho relativo/normalizado
	StartLine int    // 1-based
	EndLine   int    // 0 = achado de linha única
	Text      string // linha original (sem trim) que ancora o achado
}

// RuleIDFor padroniza o id da regra a partir do tipo de construção.
func RuleIDFor(k Kind) string {
	return "commented-" + string(k)
}
