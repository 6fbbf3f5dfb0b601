package cli

import (
	"fmt"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	"github.com/dulpromax/dulpromax-b2b/internal/exporter"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export the catalog to the local snapshot store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Fetch every category and product and store them locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.requireStore(); err != nil {
				return err
			}
			snap, err := exporter.NewService(rt.app.Client(), rt.app.Store(), rt.log).Run(cmd.Context())
			if err != nil {
				return err
			}
			rt.log.InfoObj("catalog snapshot saved", "snapshot_meta", map[string]any{
				"categories": len(snap.Categories),
				"products":   len(snap.Products),
				"path":       rt.app.Config().SnapshotPath,
			})
			return rt.print(cmd.OutOrStdout(), map[string]any{
				"categories": len(snap.Categories),
				"products":   len(snap.Products),
				"taken_at":   snap.TakenAt,
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the stored snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rt.requireStore(); err != nil {
				return err
			}
			store := rt.app.Store()
			savedAt, err := store.SavedAt()
			if err != nil {
				return fmt.Errorf("read snapshot time: %w", err)
			}
			if savedAt.IsZero() {
				return fmt.Errorf("no snapshot stored yet; run snapshot save first")
			}
			cats, err := store.Categories()
			if err != nil {
				return fmt.Errorf("read categories: %w", err)
			}
			products, err := store.Products()
			if err != nil {
				return fmt.Errorf("read products: %w", err)
			}
			return rt.print(cmd.OutOrStdout(), domain.CatalogSnapshot{
				TakenAt:    savedAt,
				Categories: cats,
				Products:   products,
			})
		},
	})

	return cmd
}

func (rt *runtime) requireStore() error {
	switch rt.app.Config().SnapshotStorageType {
	case "", "none", "disabled":
		return fmt.Errorf("snapshot storage is disabled; set SNAPSHOT_STORAGE_TYPE=bbolt")
	}
	return nil
}
