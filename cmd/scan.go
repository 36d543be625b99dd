package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thetestlabs/detect-commented-terraform/internal/classifier"
	"github.com/thetestlabs/detect-commented-terraform/internal/config"
	"github.com/thetestlabs/detect-commented-terraform/internal/logging"
	"github.com/thetestlabs/detect-commented-terraform/internal/model"
	"github.com/thetestlabs/detect-commented-terraform/internal/parser"
	"github.com/thetestlabs/detect-commented-terraform/internal/render"
	"github.com/thetestlabs/detect-commented-terraform/internal/report"
	"github.com/thetestlabs/detect-commented-terraform/internal/sarif"
	"github.com/thetestlabs/detect-commented-terraform/internal/scanner"
)

var (
	rootDir      string
	outputFormat string
	excludeGlobs []string
	configPath   string
	reportDir    string
	debugMode    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [arquivos...]",
	Short: "Escaneia arquivos Terraform em busca de código comentado",
	Long: "Escaneia os arquivos informados (ou os descobertos sob --dir) em busca de " +
		"blocos, declarações e atribuições Terraform comentados. Sai com código 1 " +
		"quando há achados e 2 quando algum arquivo não pôde ser lido.",
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		logger := logging.Logger

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Errorw("Erro ao carregar configuração", "erro", err)
			os.Exit(2)
		}

		var files []string
		if len(args) > 0 {
			// lista explícita (ex: arquivos staged passados pelo pre-commit)
			files = args
		} else {
			excludes := append(append([]string{}, cfg.Exclude...), excludeGlobs...)
			detected, err := parser.DetectTerraformFiles(rootDir, cfg.Extensions, excludes)
			if err != nil {
				logger.Errorw("Erro ao enumerar arquivos", "erro", err)
				os.Exit(2)
			}
			for _, f := range detected {
				files = append(files, f.Path)
			}
		}
		logger.Debugf("Arquivos a escanear: %d", len(files))

		rules := classifier.NewRuleSet(cfg.Keywords...)
		rep := report.New()
		for _, path := range files {
			findings, err := scanner.ScanFile(path, rules)
			if err != nil {
				// falha de leitura não interrompe a varredura dos demais
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				rep.AddError(path, err)
				continue
			}
			rep.Add(findings...)
		}

		switch strings.ToLower(outputFormat) {
		case "json":
			if err := render.JSON(os.Stdout, rep.Findings); err != nil {
				logger.Errorw("Erro ao gerar JSON", "erro", err)
				os.Exit(2)
			}
		case "markdown":
			render.Markdown(os.Stdout, rep.Findings)
		case "table":
			if err := render.Table(os.Stdout, rep.Findings); err != nil {
				logger.Errorw("Erro ao renderizar tabela", "erro", err)
				os.Exit(2)
			}
		case "sarif":
			encoded, err := sarif.Marshal(sortedFindings(rep), toolName, toolVersion)
			if err != nil {
				logger.Errorw("Erro ao gerar SARIF", "erro", err)
				os.Exit(2)
			}
			fmt.Println(string(encoded))
		default:
			render.Text(os.Stdout, rep.Findings)
		}

		if reportDir != "" {
			outPath, err := sarif.Export(sortedFindings(rep), reportDir, toolName, toolName, toolVersion)
			if err != nil {
				logger.Errorw("Erro ao salvar relatório", "erro", err)
				os.Exit(2)
			}
			logger.Infow("Relatório SARIF salvo", "arquivo", outPath)
		}

		os.Exit(rep.ExitCode())
	},
}

func sortedFindings(rep *report.Report) []model.Finding {
	out := append([]model.Finding(nil), rep.Findings...)
	sarif.SortFindings(out)
	return out
}

func init() {
	scanCmd.Flags().StringVarP(&rootDir, "dir", "d", ".", "Diretório raiz da descoberta de arquivos")
	scanCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Formato da saída (json, markdown, table, sarif)")
	scanCmd.Flags().StringSliceVarP(&excludeGlobs, "exclude", "e", nil, "Globs de exclusão (ex: 'modules/**')")
	scanCmd.Flags().StringVarP(&configPath, "config", "c", "", "Arquivo de configuração (padrão: "+config.DefaultPath+")")
	scanCmd.Flags().StringVarP(&reportDir, "write-report", "w", "", "Diretório onde salvar o relatório SARIF")
	scanCmd.Flags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(scanCmd)
}
