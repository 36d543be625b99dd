package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/thetestlabs/detect-commented-terraform/internal/classifier"
	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

type wantFinding struct {
	kind  model.Kind
	start int
	end   int
}

func TestScanLines(t *testing.T) {
	rules := classifier.NewRuleSet()

	tests := []struct {
		name  string
		lines []string
		want  []wantFinding
	}{
		{
			name: "bloco_dobrado_em_um_achado",
			lines: []string{
				`# resource "aws_instance" "x" {`,
				`#   ami = "abc"`,
				`# }`,
			},
			want: []wantFinding{{model.KindResource, 1, 3}},
		},
		{
			name: "bloco_aninhado_conta_profundidade",
			lines: []string{
				`# resource "aws_security_group" "sg" {`,
				`#   ingress {`,
				`#     from_port = 80`,
				`#   }`,
				`# }`,
			},
			want: []wantFinding{{model.KindResource, 1, 5}},
		},
		{
			name: "bloco_interrompido_por_codigo",
			lines: []string{
				`# resource "aws_instance" "x" {`,
				`resource "aws_instance" "y" {`,
				`  ami = "abc"`,
				`}`,
			},
			want: []wantFinding{{model.KindResource, 1, 0}},
		},
		{
			name: "bloco_aberto_ate_o_fim_do_arquivo",
			lines: []string{
				`# variable "region" {`,
				`#   default = "us-east-1"`,
			},
			want: []wantFinding{{model.KindVariable, 1, 2}},
		},
		{
			name: "atribuicoes_soltas_sao_independentes",
			lines: []string{
				`# ami = "ami-123456"`,
				`# name = "example"`,
			},
			want: []wantFinding{
				{model.KindAssignment, 1, 0},
				{model.KindAssignment, 2, 0},
			},
		},
		{
			name: "atribuicao_dentro_de_bloco_nao_gera_achado_extra",
			lines: []string{
				`# module "vpc" {`,
				`#   cidr = "10.0.0.0/16"`,
				`#   name = "main"`,
				`# }`,
			},
			want: []wantFinding{{model.KindResource, 1, 4}},
		},
		{
			name:  "fechamento_isolado_nao_e_achado",
			lines: []string{`# }`},
			want:  nil,
		},
		{
			name: "arquivo_limpo",
			lines: []string{
				`resource "aws_instance" "example" {`,
				`  ami           = "ami-123456"`,
				`  instance_type = "t2.micro"`,
				`}`,
			},
			want: nil,
		},
		{
			name: "comentario_de_prosa_ignorado",
			lines: []string{
				`# módulo de rede da stack de produção`,
				`resource "aws_vpc" "main" {`,
				`  cidr_block = "10.0.0.0/16"`,
				`}`,
			},
			want: nil,
		},
		{
			name: "comentario_de_bloco_multilinha",
			lines: []string{
				`/*`,
				`resource "aws_instance" "example" {`,
				`  ami = "ami-123456"`,
				`}`,
				`*/`,
			},
			want: []wantFinding{{model.KindResource, 1, 5}},
		},
		{
			name:  "comentario_de_bloco_linha_unica",
			lines: []string{`/* ami = "ami-123456" */`},
			want:  []wantFinding{{model.KindAssignment, 1, 0}},
		},
		{
			name: "comentario_de_bloco_sem_codigo",
			lines: []string{
				`/*`,
				` documentação do módulo`,
				`*/`,
			},
			want: nil,
		},
		{
			name: "abridor_e_fechador_na_mesma_linha",
			lines: []string{
				`# locals {}`,
			},
			want: []wantFinding{{model.KindVariable, 1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanLines("main.tf", tt.lines, rules)
			if len(got) != len(tt.want) {
				t.Fatalf("esperado %d achado(s), obtido %d: %+v", len(tt.want), len(got), got)
			}
			for i, w := range tt.want {
				if got[i].Kind != w.kind {
					t.Errorf("achado %d: esperado tipo %s, obtido %s", i, w.kind, got[i].Kind)
				}
				if got[i].StartLine != w.start {
					t.Errorf("achado %d: esperado início na linha %d, obtido %d", i, w.start, got[i].StartLine)
				}
				if got[i].EndLine != w.end {
					t.Errorf("achado %d: esperado fim na linha %d, obtido %d", i, w.end, got[i].EndLine)
				}
				if got[i].FilePath != "main.tf" {
					t.Errorf("achado %d: esperado arquivo main.tf, obtido %s", i, got[i].FilePath)
				}
			}
		})
	}
}

func TestScanLinesAncoraNoTextoOriginal(t *testing.T) {
	rules := classifier.NewRuleSet()
	lines := []string{
		`  # resource "aws_instance" "x" {`,
		`  # }`,
	}

	got := ScanLines("main.tf", lines, rules)
	if len(got) != 1 {
		t.Fatalf("esperado 1 achado, obtido %d", len(got))
	}
	if got[0].Text != lines[0] {
		t.Errorf("esperado texto sem trim %q, obtido %q", lines[0], got[0].Text)
	}
}

func TestScanFile(t *testing.T) {
	rules := classifier.NewRuleSet()
	path := writeTempFile(t, `
# resource "aws_instance" "example" {
#   ami           = "ami-123456"
#   instance_type = "t2.micro"
# }
`)

	findings, err := ScanFile(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 1 {
		t.Fatalf("esperado 1 achado, obtido %d", len(findings))
	}
	if findings[0].StartLine != 2 || findings[0].EndLine != 5 {
		t.Errorf("esperado bloco nas linhas 2-5, obtido %d-%d", findings[0].StartLine, findings[0].EndLine)
	}
}

func TestScanFileInexistente(t *testing.T) {
	rules := classifier.NewRuleSet()
	_, err := ScanFile(filepath.Join(t.TempDir(), "nao-existe.tf"), rules)
	if err == nil {
		t.Fatal("esperado erro de leitura, obtido nil")
	}
}

// Duas varreduras do mesmo conteúdo produzem relatórios idênticos.
func TestScanFileIdempotente(t *testing.T) {
	rules := classifier.NewRuleSet()
	path := writeTempFile(t, `
# ami = "ami-123456"
# resource "aws_instance" "x" {
# }
`)

	first, err := ScanFile(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ScanFile(path, rules)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("varreduras divergentes:\n%+v\n%+v", first, second)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.tf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}
