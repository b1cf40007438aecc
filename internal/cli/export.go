package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chazuruo/cmdpal/internal/templates"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath string
	Format     string
	Output     string
}

// exportTemplate is the serialized form of one template.
type exportTemplate struct {
	Description  string              `yaml:"description" json:"description"`
	Command      string              `yaml:"command" json:"command"`
	Placeholders []exportPlaceholder `yaml:"placeholders,omitempty" json:"placeholders,omitempty"`
}

// exportPlaceholder is the serialized form of one placeholder token.
type exportPlaceholder struct {
	Name     string `yaml:"name" json:"name"`
	Required bool   `yaml:"required" json:"required"`
	Default  string `yaml:"default,omitempty" json:"default,omitempty"`
	Optional bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the template palette as YAML or JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "output format (yaml, json)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "write to file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions) error {
	_, store, err := loadSession(opts.ConfigPath)
	if err != nil {
		return err
	}

	entries := exportEntries(store)

	var data []byte
	switch opts.Format {
	case "yaml":
		data, err = yaml.Marshal(entries)
	case "json":
		data, err = json.MarshalIndent(entries, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (use yaml or json)", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}

	if opts.Output == "" {
		fmt.Print(string(data))
		if opts.Format == "json" {
			fmt.Println()
		}
		return nil
	}

	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	fmt.Printf("Exported %d template(s) to %s\n", len(entries), opts.Output)
	return nil
}

// exportEntries converts the store into the export form.
func exportEntries(store *templates.Store) []exportTemplate {
	entries := make([]exportTemplate, 0, store.Len())
	for _, t := range store.All() {
		entry := exportTemplate{
			Description: t.Description,
			Command:     t.Command,
		}
		for _, tok := range t.Tokens() {
			entry.Placeholders = append(entry.Placeholders, exportPlaceholder{
				Name:     tok.Name,
				Required: !tok.HasDefault,
				Default:  tok.Default,
				Optional: tok.Optional,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}
