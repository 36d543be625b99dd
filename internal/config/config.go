package config

import (
	"fmt"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/thetestlabs/detect-commented-terraform/internal/parser"
)

// DefaultPath é o arquivo de configuração procurado na raiz do repositório.
const DefaultPath = ".dct.json"

type Config struct {
	Extensions []string `koanf:"extensions"` // extensões varridas
	Exclude    []string `koanf:"exclude"`    // globs doublestar ignorados
	Keywords   []string `koanf:"keywords"`   // palavras-chave extras de bloco
}

// Load monta a configuração em camadas: defaults <- arquivo <- ambiente
// (variáveis DCT_*). O arquivo só é obrigatório quando informado
// explicitamente.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"extensions": parser.DefaultExtensions,
		"exclude":    []string{},
		"keywords":   []string{},
	}, "."), nil); err != nil {
		return nil, err
	}

	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return nil, fmt.Errorf("ler configuração %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("configuração %s: %w", path, err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: "DCT_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DCT_"))
			if strings.Contains(value, ",") {
				return key, strings.Split(value, ",")
			}
			return key, value
		},
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
