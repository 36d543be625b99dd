package parser

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DetectTerraformFiles enumera os arquivos Terraform sob root em ordem
// determinística (ordem léxica do WalkDir). Diretórios .git e .terraform
// são ignorados; os globs de exclusão casam contra o caminho relativo a
// root, com separador /.
func DetectTerraformFiles(root string, extensions, excludes []string) ([]SourceFile, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var out []SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == ".terraform" {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(d.Name(), extensions) {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range excludes {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return nil
			}
		}
		out = append(out, SourceFile{Path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
