package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

var (
	success = color.New(color.FgGreen).FprintfFunc()
	fail    = color.New(color.FgRed).FprintfFunc()
)

// Text imprime um achado por linha no formato caminho:linha: texto,
// seguido do resumo colorido.
func Text(w io.Writer, findings []model.Finding) {
	for _, f := range findings {
		fmt.Fprintf(w, "%s:%d: %s\n", f.FilePath, f.StartLine, f.Text)
	}
	if len(findings) > 0 {
		fail(w, "❌ Código Terraform comentado encontrado (%d ocorrência(s)).\n", len(findings))
		return
	}
	success(w, "✅ Nenhum código Terraform comentado.\n")
}
