package cli

import (
	"fmt"
	"strconv"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	"github.com/dulpromax/dulpromax-b2b/pkg/apiclient"
	"github.com/dulpromax/dulpromax-b2b/pkg/publishers"
	"github.com/spf13/cobra"
)

func newProductsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "prod"},
		Short:   "Product operations",
	}

	cmd.AddCommand(newProductsListCmd(rt))

	// get
	cmd.AddCommand(&cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get a product by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.app.Client().GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), p)
		},
	})

	// create
	var createFile string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product from a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.ProductInput
			if err := readPayload(createFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			if in.Name == "" || in.Slug == "" {
				return fmt.Errorf("product name and slug are required")
			}
			p, err := rt.app.Client().CreateProduct(cmd.Context(), in)
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceProduct, publishers.ActionCreated, p.ID, p))
			return rt.print(cmd.OutOrStdout(), p)
		},
	}
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "Payload file, - for stdin (required)")
	_ = createCmd.MarkFlagRequired("file")
	cmd.AddCommand(createCmd)

	// update
	var updateFile string
	updateCmd := &cobra.Command{
		Use:   "update PRODUCT_ID",
		Short: "Replace a product from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.ProductInput
			if err := readPayload(updateFile, cmd.InOrStdin(), &in); err != nil {
				return err
			}
			p, err := rt.app.Client().UpdateProduct(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceProduct, publishers.ActionUpdated, args[0], p))
			return rt.print(cmd.OutOrStdout(), p)
		},
	}
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Payload file, - for stdin (required)")
	_ = updateCmd.MarkFlagRequired("file")
	cmd.AddCommand(updateCmd)

	// delete
	cmd.AddCommand(&cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := rt.app.Client().DeleteProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceProduct, publishers.ActionDeleted, args[0], nil))
			return rt.print(cmd.OutOrStdout(), map[string]any{"id": args[0], "deleted": ok})
		},
	})

	// stock
	cmd.AddCommand(&cobra.Command{
		Use:   "stock PRODUCT_ID NEW_STOCK",
		Short: "Set the stock quantity of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := strconv.Atoi(args[1])
			if err != nil || stock < 0 {
				return fmt.Errorf("invalid stock %q (expected a non-negative integer)", args[1])
			}
			p, err := rt.app.Client().UpdateProductStock(cmd.Context(), args[0], stock)
			if err != nil {
				return err
			}
			rt.app.Emit(cmd.Context(), publishers.NewEvent(publishers.ResourceProduct, publishers.ActionStockUpdated, args[0], map[string]int{"stock_quantity": stock}))
			return rt.print(cmd.OutOrStdout(), p)
		},
	})

	return cmd
}

func newProductsListCmd(rt *runtime) *cobra.Command {
	var (
		filter       apiclient.ProductFilter
		activeOnly   bool
		featuredOnly bool
		minPrice     float64
		maxPrice     float64
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products with optional filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			f := filter
			if flags.Changed("active-only") {
				f.ActiveOnly = apiclient.Bool(activeOnly)
			}
			if flags.Changed("featured-only") {
				f.FeaturedOnly = apiclient.Bool(featuredOnly)
			}
			if flags.Changed("min-price") {
				f.MinPrice = apiclient.Float(minPrice)
			}
			if flags.Changed("max-price") {
				f.MaxPrice = apiclient.Float(maxPrice)
			}
			list, err := rt.app.Client().ListProducts(cmd.Context(), f)
			if err != nil {
				return err
			}
			return rt.print(cmd.OutOrStdout(), list)
		},
	}
	flags := listCmd.Flags()
	flags.IntVar(&filter.Page, "page", 0, "Page number (server default when 0)")
	flags.IntVar(&filter.PerPage, "per-page", 0, "Page size (server default when 0)")
	flags.StringVar(&filter.CategoryID, "category", "", "Category ID")
	flags.StringVarP(&filter.Search, "search", "s", "", "Free text search")
	flags.BoolVar(&activeOnly, "active-only", true, "Only active products (omitted unless set)")
	flags.BoolVar(&featuredOnly, "featured-only", true, "Only featured products (omitted unless set)")
	flags.Float64Var(&minPrice, "min-price", 0, "Minimum retail price")
	flags.Float64Var(&maxPrice, "max-price", 0, "Maximum retail price")
	flags.StringToStringVar(&filter.Extra, "filter", nil, "Extra query filters as key=value")
	return listCmd
}
