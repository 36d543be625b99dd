package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

// Markdown agrupa os achados por arquivo, preservando a ordem de
// varredura.
func Markdown(w io.Writer, findings []model.Finding) {
	var b strings.Builder
	b.WriteString("## 📋 Código Terraform comentado\n\n")
	if len(findings) == 0 {
		b.WriteString("Nenhum achado.\n")
		fmt.Fprint(w, b.String())
		return
	}

	var order []string
	grouped := map[string][]model.Finding{}
	for _, f := range findings {
		if _, seen := grouped[f.FilePath]; !seen {
			order = append(order, f.FilePath)
		}
		grouped[f.FilePath] = append(grouped[f.FilePath], f)
	}

	for _, path := range order {
		fs := grouped[path]
		b.WriteString(fmt.Sprintf("### %s (%d achado(s))\n", path, len(fs)))
		for _, f := range fs {
			b.WriteString(fmt.Sprintf("- linha %d (%s): `%s`\n", f.StartLine, f.Kind, strings.TrimSpace(f.Text)))
		}
		b.WriteString("\n")
	}
	fmt.Fprint(w, b.String())
}
