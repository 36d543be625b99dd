package cmd

import (
	"github.com/spf13/cobra"
)

const (
	toolName    = "detect-commented-terraform"
	toolVersion = "0.2.0"
)

var rootCmd = &cobra.Command{
	Use:   toolName,
	Short: "Detecta código Terraform comentado antes do commit",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
