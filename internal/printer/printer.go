// Package printer renders the resolved output fields for the downstream
// packaging pipeline. Field names are a fixed external contract; downstream
// tooling matches on the exact names.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ccstack/ccfeed/internal/resolve"
)

// Output formats.
const (
	FormatEnv   = "env"
	FormatJSON  = "json"
	FormatTable = "table"
)

// field pairs a contract name with its value. Order matters: env output is
// consumed line by line downstream.
type field struct {
	name  string
	value string
}

func fields(result *resolve.Result) []field {
	return []field{
		{"product_info_url", result.ProductInfoURL},
		{"icon_url", result.IconURL},
		{"base_version", result.BaseVersion},
		{"version", result.Version},
		{"display_name", result.DisplayName},
		{"manifest_url", result.ManifestURL},
		{"family", result.Family},
		{"minimum_os_version", result.MinimumOSVersion},
	}
}

// Print renders result to w in the given format.
func Print(w io.Writer, result *resolve.Result, format string) error {
	switch format {
	case FormatEnv:
		printEnv(w, result)
		return nil
	case FormatJSON:
		return printJSON(w, result)
	case FormatTable:
		printTable(w, result)
		return nil
	default:
		return fmt.Errorf("unknown output format %q, valid formats: env, json, table", format)
	}
}

// printEnv writes KEY=value lines in contract order, skipping unset fields.
func printEnv(w io.Writer, result *resolve.Result) {
	for _, f := range fields(result) {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s=%s\n", f.name, f.value)
	}
}

func printJSON(w io.Writer, result *resolve.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func printTable(w io.Writer, result *resolve.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, f := range fields(result) {
		v := f.value
		if v == "" {
			v = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\n", f.name, v)
	}
	tw.Flush()
}

// ResolveFormat resolves format aliases to canonical names.
func ResolveFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "env", "":
		return FormatEnv, nil
	case "json":
		return FormatJSON, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q, valid formats: env, json, table", s)
	}
}
