package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"xctheme"
	"xctheme/internal/format"
	"xctheme/internal/mapping"
	"xctheme/internal/preview"
)

var (
	flagOut      string
	flagMappings string
	flagName     string
	flagCheck    bool
	version      = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "xctheme",
	Short:   "Convert VS Code color themes to Xcode .xccolortheme files",
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert [theme.json]",
	Short: "Convert a VS Code theme to an .xccolortheme file",
	Long:  "Convert a VS Code color theme (JSON, comments allowed) to an Xcode color theme. Reads stdin when no file is given and writes to stdout in that case unless --out is set.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

var previewCmd = &cobra.Command{
	Use:   "preview [theme.json]",
	Short: "Show the converted colors as terminal swatches",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format mapping-override HCL files",
	Long:  "Format one or more mapping-override files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	convertCmd.Flags().StringVar(&flagOut, "out", "", "output path (default: derived from the theme name, next to the input)")
	convertCmd.Flags().StringVar(&flagMappings, "mappings", "", "path to a mapping-overrides HCL file")
	convertCmd.Flags().StringVar(&flagName, "name", "", "override the theme name")
	previewCmd.Flags().StringVar(&flagMappings, "mappings", "", "path to a mapping-overrides HCL file")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadTheme loads the theme from the file argument, or from stdin when no
// argument is given. The returned bool reports whether input came from stdin.
func loadTheme(cmd *cobra.Command, args []string) (*xctheme.Theme, bool, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, true, fmt.Errorf("reading stdin: %w", err)
		}
		theme, err := xctheme.LoadBytes(data, "")
		return theme, true, err
	}
	theme, err := xctheme.Load(args[0])
	return theme, false, err
}

func loadOverrides() (*mapping.Overrides, error) {
	if flagMappings == "" {
		return nil, nil
	}
	return mapping.LoadOverrides(flagMappings)
}

func runConvert(cmd *cobra.Command, args []string) error {
	theme, fromStdin, err := loadTheme(cmd, args)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	if flagName != "" {
		theme.Name = flagName
	}

	overrides, err := loadOverrides()
	if err != nil {
		return fmt.Errorf("loading mappings: %w", err)
	}

	doc := xctheme.ConvertWith(theme, overrides)

	if flagOut == "-" || (fromStdin && flagOut == "") {
		fmt.Fprint(cmd.OutOrStdout(), doc)
		return nil
	}

	outPath := flagOut
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(args[0]), xctheme.OutputFilename(theme))
	}
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	theme, _, err := loadTheme(cmd, args)
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}

	overrides, err := loadOverrides()
	if err != nil {
		return fmt.Errorf("loading mappings: %w", err)
	}

	tables := mapping.Default()
	if overrides != nil {
		tables = overrides.Apply(tables)
	}

	fmt.Fprint(cmd.OutOrStdout(), preview.RenderWith(theme, tables))
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := format.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
