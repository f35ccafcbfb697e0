package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/datatable"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load every manifest table and dump per-table stats",
	Long: `Load every table named by the manifest and print, per table: the
logical name, the RowStruct tag, the row count and (with --names) the
row names in document order.

Examples:
  datatable inspect -m tables.yaml -r ./export
  datatable inspect --names`,
	RunE: runInspect,
}

var inspectNames bool

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&inspectNames, "names", false, "also list row names")
}

func runInspect(cmd *cobra.Command, args []string) error {
	reg, err := loadFromManifest(cmd.Context())
	if err != nil {
		return err
	}

	for _, name := range reg.Names() {
		tbl, ok := datatable.TableOf[datatable.UntypedRow](reg, name)
		if !ok {
			// every manifest load is untyped; this would be a programming error
			return fmt.Errorf("table %s missing from registry", name)
		}
		fmt.Printf("%s  rowstruct=%s  rows=%d\n", tbl.Name(), tbl.RowStruct(), tbl.Len())
		if inspectNames {
			for i, rowName := range tbl.Names() {
				fmt.Printf("  %4d  %s\n", i, rowName)
			}
		}
	}
	return nil
}

// loadFromManifest reads the manifest, then loads every table it names from
// the --root directory, attaching the CLI logger to the context.
func loadFromManifest(ctx context.Context) (*datatable.Registry, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := datatable.ParseManifest(data)
	if err != nil {
		return nil, err
	}

	logger := newLogger()
	ctx = logger.WithContext(ctx)

	provider := datatable.NewFSProvider(os.DirFS(tablesRoot))
	return datatable.LoadRegistry(ctx, provider, m.Entries()...)
}
