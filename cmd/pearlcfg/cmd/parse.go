package cmd

import (
	"fmt"
	"strings"

	"pearlcfg/internal/keys"
	"pearlcfg/internal/model"
	"pearlcfg/internal/parser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a device response into a mapping",
	Long: `Parse a KEY = VALUE device response read from file (or stdin) and print
the recognized settings as json, yaml, query, response or table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		raw, err := readInput(cmd, name)
		if err != nil {
			return err
		}

		format := parseFormat
		if format == "" {
			format = cfg.Output
		}

		params := parser.ParseResponse(raw)
		if format == "table" {
			writeTable(cmd, params)
			return nil
		}

		p, err := adapter.Parser(format)
		if err != nil {
			return err
		}
		out, err := p.Encode(params)
		if err != nil {
			return fmt.Errorf("encode %s: %w", format, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

// writeTable prints one key per row with its value and settings group.
func writeTable(cmd *cobra.Command, params model.Params) {
	width := 0
	for _, k := range params.Keys() {
		width = max(width, len(k))
	}
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	for _, k := range params.Keys() {
		group, _ := keys.GroupOf(k)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
			bold(fmt.Sprintf("%-*s", width, k)), params[k], faint("("+group+")"))
	}
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: json, yaml, query, response, table (default from config)")
	rootCmd.AddCommand(parseCmd)
}
