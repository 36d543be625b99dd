package parser

// DefaultExtensions são as extensões Terraform varridas quando a
// configuração não diz outra coisa.
var DefaultExtensions = []string{".tf", ".tfvars"}

type SourceFile struct {
	Path string
}
