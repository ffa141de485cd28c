package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/provider"
	"github.com/xdg/claude-run/internal/term"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available providers",
	Long: `List the providers the wizard offers, in menu order.

Add or override providers in providers.yaml in the config directory:

  providers:
    - id: openrouter
      name: OpenRouter
      base_url: https://openrouter.ai/api`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, _ []string) error {
	cat, err := provider.LoadCatalog(config.CatalogPath())
	if err != nil {
		return fmt.Errorf("failed to load providers: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tBASE URL")
	for _, p := range cat.All() {
		baseURL := p.BaseURL
		if p.Custom && baseURL == "" {
			baseURL = term.Dim("(entered during setup)")
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.MenuName(), baseURL)
	}
	return w.Flush()
}
