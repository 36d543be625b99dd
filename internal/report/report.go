package report

import (
	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

// ScanError registra uma falha de leitura em um arquivo específico.
type ScanError struct {
	Path string
	Err  error
}

// Report agrega os achados na ordem de varredura (arquivo, depois
// linha). Achados nunca são mutados depois de inseridos.
type Report struct {
	Findings []model.Finding
	Errors   []ScanError
}

func New() *Report {
	return &Report{}
}

func (r *Report) Add(findings ...model.Finding) {
	r.Findings = append(r.Findings, findings...)
}

func (r *Report) AddError(path string, err error) {
	r.Errors = append(r.Errors, ScanError{Path: path, Err: err})
}

func (r *Report) HasFindings() bool {
	return len(r.Findings) > 0
}

// ExitCode mapeia o resultado agregado para o contrato de saída do
// processo. Falha de leitura vale 2 e domina sobre achados: um arquivo
// pulado em silêncio poderia esconder código desativado.
func (r *Report) ExitCode() int {
	switch {
	case len(r.Errors) > 0:
		return 2
	case len(r.Findings) > 0:
		return 1
	}
	return 0
}
