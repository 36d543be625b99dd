package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thetestlabs/detect-commented-terraform/internal/classifier"
	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		classifier.NewFinding(model.KindResource, "main.tf", 2, `# resource "aws_instance" "x" {`),
		classifier.NewFinding(model.KindAssignment, "vars.tf", 7, `# region = "us-east-1"`),
	}
}

func TestText(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Text(&buf, sampleFindings())
	out := buf.String()

	if !strings.Contains(out, `main.tf:2: # resource "aws_instance" "x" {`) {
		t.Errorf("saída sem o formato caminho:linha: texto:\n%s", out)
	}
	if !strings.Contains(out, "vars.tf:7:") {
		t.Errorf("saída sem o segundo achado:\n%s", out)
	}
	if !strings.Contains(out, "❌") {
		t.Errorf("saída sem o resumo de falha:\n%s", out)
	}
}

func TestTextSemAchados(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Text(&buf, nil)
	if !strings.Contains(buf.String(), "✅") {
		t.Errorf("saída sem o resumo de sucesso:\n%s", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleFindings()); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON inválido: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("esperado 2 achados, obtido %d", len(decoded))
	}
	if decoded[0]["rule_id"] != "commented-resource" {
		t.Errorf("esperado regra commented-resource, obtido %v", decoded[0]["rule_id"])
	}
	if decoded[1]["line"] != float64(7) {
		t.Errorf("esperado linha 7, obtido %v", decoded[1]["line"])
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	Markdown(&buf, sampleFindings())
	out := buf.String()

	if !strings.Contains(out, "### main.tf (1 achado(s))") {
		t.Errorf("markdown sem o cabeçalho do arquivo:\n%s", out)
	}
	if !strings.Contains(out, "- linha 7 (assignment):") {
		t.Errorf("markdown sem a linha do achado:\n%s", out)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, sampleFindings()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "main.tf") || !strings.Contains(out, "vars.tf") {
		t.Errorf("tabela sem os arquivos esperados:\n%s", out)
	}
}
