package cli

import (
	"fmt"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	"github.com/dulpromax/dulpromax-b2b/pkg/publishers"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Category operations",
	}

	// list
	var activeOnly bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *bool
			if cmd.Flags().Changed("active-only") {
				filter = &activeOnly
			}
			cats, err := rt.app.Client().ListCategories(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), cats)
		},
	}
	listCmd.Flags().BoolVar(&activeOnly, "active-only", true, "Only active categories (omitted unless set)")
	cmd.AddCommand(listCmd)

	// get
	cmd.AddCommand(&cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Get a category by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rt.app.Client().GetCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), cat)
		},
	})

	// create
	var createFile string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category from a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.CategoryInput
			if err := readPayload(createFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			if in.Name == "" {
				return fmt.Errorf("category name is required")
			}
			cat, err := rt.app.Client().CreateCategory(cmd.Context(), in)
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceCategory, publishers.ActionCreated, cat.ID, cat))
			return rt.print(cmd.OutOrStdout(), cat)
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Payload file, - for stdin (required)")
	_ = createCmd.MarkFlagRequired("file")
	cmd.AddCommand(createCmd)

	// update
	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update CATEGORY_ID",
		Short: "Replace a category from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.CategoryInput
			if err := readPayload(updateFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			cat, err := rt.app.Client().UpdateCategory(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceCategory, publishers.ActionUpdated, args[0], cat))
			return rt.print(cmd.OutOrStdout(), cat)
		},
	}
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Payload file, - for stdin (required)")
	_ = updateCmd.MarkFlagRequired("file")
	cmd.AddCommand(updateCmd)

	// delete
	cmd.AddCommand(&cobra.Command{
		Use:   "delete CATEGORY_ID",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := rt.app.Client().DeleteCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceCategory, publishers.ActionDeleted, args[0], nil))
			return rt.print(cmd.OutOrStdout(), map[string]any{"id": args[0], "deleted": ok})
		},
	})

	return cmd
}
