package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thetestlabs/detect-commented-terraform/internal/model"
)

type jsonFinding struct {
	RuleID  string `json:"rule_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	EndLine int    `json:"end_line,omitempty"`
	Text    string `json:"text"`
}

// JSON serializa os achados preservando a ordem de varredura.
func JSON(w io.Writer, findings []model.Finding) error {
	out := make([]jsonFinding, 0, len(findings))
	for _, f := range findings {
		out = append(out, jsonFinding{
			RuleID:  f.RuleID,
			Kind:    string(f.Kind),
			Message: f.Message,
			File:    f.FilePath,
			Line:    f.StartLine,
			EndLine: f.EndLine,
			Text:    f.Text,
		})
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
