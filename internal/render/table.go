package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

// Table renderiza os achados em tabela para leitura no terminal.
func Table(w io.Writer, findings []model.Finding) error {
	tbl := tablewriter.NewTable(w)
	tbl.Header("Arquivo", "Linha", "Tipo", "Trecho")
	for _, f := range findings {
		row := []string{
			f.FilePath,
			strconv.Itoa(f.StartLine),
			string(f.Kind),
			strings.TrimSpace(f.Text),
		}
		if err := tbl.Append(row); err != nil {
			return err
		}
	}
	return tbl.Render()
}
