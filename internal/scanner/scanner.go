package scanner

import (
	"bufio"
	"os"
	"strings"

	"github.com/thetestlabs/detect-commented-terraform/internal/classifier"
	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

// ScanFile lê um arquivo linha a linha e devolve os achados de código
// Terraform comentado. Erros são apenas de leitura; conteúdo malformado
// nunca falha a varredura.
func ScanFile(path string, rules *classifier.RuleSet) ([]model.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ScanLines(path, lines, rules), nil
}

// ScanLines percorre as linhas de um único arquivo. O contador de
// profundidade de chaves é local à varredura e zera a cada chamada,
// então nada vaza entre arquivos.
func ScanLines(path string, lines []string, rules *classifier.RuleSet) []model.Finding {
	var findings []model.Finding

	// bloco comentado aberto (# resource ... { ainda sem fechamento)
	var open *model.Finding
	depth := 0

	// região /* ... */ em andamento
	inComment := false
	commentStart := 0
	commentText := ""
	var commentKind model.Kind
	commentHit := false

	flush := func() {
		if open != nil {
			findings = append(findings, *open)
			open = nil
			depth = 0
		}
	}

	for i, raw := range lines {
		n := i + 1
		trimmed := strings.TrimSpace(raw)

		if inComment {
			if !commentHit {
				if k, ok := rules.Match(blockCommentPayload(raw)); ok {
					commentKind = k
					commentHit = true
				}
			}
			if strings.Contains(trimmed, "*/") {
				if commentHit {
					f := classifier.NewFinding(commentKind, path, commentStart, commentText)
					f.EndLine = n
					findings = append(findings, f)
				}
				inComment = false
			}
			continue
		}

		if strings.HasPrefix(trimmed, "/*") {
			flush()
			payload := blockCommentPayload(raw)
			kind, hit := rules.Match(payload)
			if strings.HasSuffix(trimmed, "*/") && len(trimmed) > 3 {
				// comentário de bloco em linha única
				if hit {
					findings = append(findings, classifier.NewFinding(kind, path, n, raw))
				}
				continue
			}
			inComment = true
			commentStart = n
			commentText = raw
			commentKind, commentHit = kind, hit
			continue
		}

		payload, ok := classifier.CommentPayload(raw)
		if !ok {
			// linha de código encerra um bloco comentado ainda aberto
			flush()
			continue
		}

		if open != nil {
			// linhas internas são dobradas no achado do abridor, mesmo
			// que isoladas casassem com a regra de atribuição
			depth += braceDelta(payload)
			open.EndLine = n
			if depth <= 0 {
				findings = append(findings, *open)
				open = nil
				depth = 0
			}
			continue
		}

		if rules.IsCloser(payload) {
			// "}" isolado não é evidência de código desativado
			continue
		}

		kind, ok := rules.Match(payload)
		if !ok {
			continue
		}
		f := classifier.NewFinding(kind, path, n, raw)
		if kind != model.KindAssignment {
			if d := braceDelta(payload); d > 0 {
				open = &f
				depth = d
				continue
			}
		}
		findings = append(findings, f)
	}
	flush()
	return findings
}

// braceDelta conta aberturas menos fechamentos de chave no payload.
// Chaves dentro de strings contam também; é o limite aceito da heurística.
func braceDelta(payload string) int {
	return strings.Count(payload, "{") - strings.Count(payload, "}")
}

// blockCommentPayload normaliza uma linha de região /* ... */ para ser
// testada contra as regras.
func blockCommentPayload(raw string) string {
	t := strings.TrimSpace(raw)
	t = strings.TrimPrefix(t, "/*")
	t = strings.TrimSuffix(t, "*/")
	t = strings.TrimSpace(t)
	t = strings.TrimPrefix(t, "*")
	return strings.TrimSpace(t)
}
