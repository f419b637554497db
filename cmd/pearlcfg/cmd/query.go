package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"pearlcfg/internal/model"
	"pearlcfg/internal/parser"

	"github.com/spf13/cobra"
)

var (
	queryFromFile    string
	queryInputFormat string
)

var queryCmd = &cobra.Command{
	Use:   "query [key=value...]",
	Short: "Build a query string from settings",
	Long: `Build a ?key=value&... query string in ascending key order. Settings come
from key=value arguments, a file (--from-file), or both; arguments win.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := model.Params{}
		if queryFromFile != "" {
			fromFile, err := loadParams(cmd, queryFromFile, queryInputFormat)
			if err != nil {
				return err
			}
			params = fromFile
		}

		fromArgs, err := parseAssignments(args)
		if err != nil {
			return err
		}
		for k, v := range fromArgs {
			params[k] = v
		}

		fmt.Fprintln(cmd.OutOrStdout(), parser.CreateQueryString(params))
		return nil
	},
}

// parseAssignments turns key=value arguments into a mapping. The value may
// be empty but the "=" is required.
func parseAssignments(args []string) (model.Params, error) {
	params := make(model.Params, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid setting %q: expected key=value", a)
		}
		params[k] = v
	}
	return params, nil
}

// loadParams decodes a mapping file. An empty format is inferred from the
// file extension and defaults to the device response format.
func loadParams(cmd *cobra.Command, name, format string) (model.Params, error) {
	raw, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = formatForPath(name)
	}
	p, err := adapter.Parser(format)
	if err != nil {
		return nil, err
	}
	params, err := p.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return params, nil
}

func formatForPath(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "response"
	}
}

func init() {
	queryCmd.Flags().StringVar(&queryFromFile, "from-file", "", "read settings from a file (- for stdin)")
	queryCmd.Flags().StringVar(&queryInputFormat, "input-format", "", "format of --from-file: json, yaml, query, response (default by extension)")
	rootCmd.AddCommand(queryCmd)
}
