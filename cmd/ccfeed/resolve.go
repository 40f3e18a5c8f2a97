package main

import (
	"github.com/spf13/cobra"

	"github.com/ccstack/ccfeed/internal/config"
	"github.com/ccstack/ccfeed/internal/feed"
	"github.com/ccstack/ccfeed/internal/printer"
	"github.com/ccstack/ccfeed/internal/resolve"
)

var (
	resolveProductID     string
	resolveBaseVersion   string
	resolveVersion       string
	resolveChannels      []string
	resolvePlatforms     []string
	resolveParseProxyXML bool
	resolveEndpoint      string
	resolveConfigPath    string
	resolveOutput        string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve metadata for a product",
	Long: `Resolve download metadata for a single product from the products feed.

Examples:
  ccfeed resolve --product-id PHSP
  ccfeed resolve --product-id PHSP --base-version 20.0 --product-version latest
  ccfeed resolve --product-id ILST --channels ccm --platforms osx10-64 -o json`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveProductID, "product-id", "", "Product SAP code (required)")
	resolveCmd.Flags().StringVar(&resolveBaseVersion, "base-version", "", "Base (major.minor) version constraint")
	resolveCmd.Flags().StringVar(&resolveVersion, "product-version", resolve.VersionLatest, "Product version, or \"latest\"")
	resolveCmd.Flags().StringSliceVar(&resolveChannels, "channels", nil, "Feed channels (default \"ccm,sti\")")
	resolveCmd.Flags().StringSliceVar(&resolvePlatforms, "platforms", nil, "Deployment platforms (default \"osx10,osx10-64\")")
	resolveCmd.Flags().BoolVar(&resolveParseProxyXML, "parse-proxy-xml", false, "Fetch and parse the product manifest and proxy XML")
	resolveCmd.Flags().StringVar(&resolveEndpoint, "endpoint", "", "Products feed endpoint override")
	resolveCmd.Flags().StringVarP(&resolveConfigPath, "config", "c", "", "Path to a YAML defaults file")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "env", "Output format: env, json, table")

	_ = resolveCmd.MarkFlagRequired("product-id")
	_ = resolveCmd.Flags().MarkHidden("endpoint")
	_ = resolveCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"env", "json", "table"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runResolve(cmd *cobra.Command, _ []string) error {
	format, err := printer.ResolveFormat(resolveOutput)
	if err != nil {
		return err
	}

	cfg, err := config.Load(resolveConfigPath)
	if err != nil {
		return err
	}

	endpoint := cfg.Endpoint
	if resolveEndpoint != "" {
		endpoint = resolveEndpoint
	}
	channels := cfg.Channels
	if len(resolveChannels) > 0 {
		channels = resolveChannels
	}
	platforms := cfg.Platforms
	if len(resolvePlatforms) > 0 {
		platforms = resolvePlatforms
	}

	resolver := resolve.NewResolver(feed.NewClient(nil), resolve.WithEndpoint(endpoint))

	result, err := resolver.Resolve(cmd.Context(), resolve.Options{
		ProductID:     resolveProductID,
		BaseVersion:   resolveBaseVersion,
		Version:       resolveVersion,
		Channels:      channels,
		Platforms:     platforms,
		ParseProxyXML: resolveParseProxyXML,
	})
	if err != nil {
		return err
	}

	return printer.Print(cmd.OutOrStdout(), result, format)
}
