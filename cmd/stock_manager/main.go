// stock_manager adalah CLI satu-aksi-per-invokasi di atas dua dokumen JSON:
// products.json (katalog) dan cart.json (cart belanja).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cartRepo "github.com/ridloal/go-stock-manager/internal/cart/repository"
	cartService "github.com/ridloal/go-stock-manager/internal/cart/service"
	catalogDomain "github.com/ridloal/go-stock-manager/internal/catalog/domain"
	catalogRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	catalogService "github.com/ridloal/go-stock-manager/internal/catalog/service"
	checkoutService "github.com/ridloal/go-stock-manager/internal/checkout/service"
	"github.com/ridloal/go-stock-manager/internal/platform/config"
	"github.com/ridloal/go-stock-manager/internal/platform/jsonstore"
)

var rootCmd = &cobra.Command{
	Use:           "stock_manager",
	Short:         "Stock Manager CLI",
	Long:          "Manage a product catalog and a shopping cart backed by products.json and cart.json.",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runAction,
}

func init() {
	flags := rootCmd.Flags()

	// Action flags, satu aksi per invokasi.
	flags.Bool("add_product", false, "Add a product to the catalog")
	flags.Bool("view_products", false, "List all products")
	flags.Bool("update_product", false, "Update fields of an existing product")
	flags.Bool("remove_product", false, "Remove a product from the catalog")
	flags.Bool("create_cart", false, "Create (reset) the cart")
	flags.Bool("add_item", false, "Add a product to the cart")
	flags.Bool("remove_item", false, "Remove an item from the cart")
	flags.Bool("view_cart", false, "Show cart contents and total")
	flags.Bool("checkout", false, "Checkout the cart")
	flags.Bool("print_stock", false, "Print remaining stock")

	// Argumen produk/cart.
	flags.String("id", "", "Product ID")
	flags.String("name", "", "Product name")
	flags.Float64("price", 0, "Product price")
	flags.Int("quantity", 0, "Quantity")
}

type app struct {
	catalog  catalogService.CatalogService
	cart     cartService.CartService
	checkout checkoutService.CheckoutService
}

func newApp() *app {
	cfg := config.LoadStoreConfig()
	store := jsonstore.New(cfg.DataDir)
	productRepository := catalogRepo.NewJSONProductRepository(store, cfg.ProductsDoc)
	cartRepository := cartRepo.NewJSONCartRepository(store, cfg.CartDoc)

	return &app{
		catalog:  catalogService.NewCatalogService(productRepository),
		cart:     cartService.NewCartService(cartRepository, productRepository),
		checkout: checkoutService.NewCheckoutService(cartRepository, productRepository),
	}
}

// runAction mengeksekusi aksi pertama yang dikenali, dalam urutan dispatch
// tetap. Tanpa action flag sama sekali, perintah selesai diam-diam.
func runAction(cmd *cobra.Command, args []string) error {
	a := newApp()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	actions := []struct {
		flag string
		run  func(context.Context, *cobra.Command) error
	}{
		{"add_product", a.runAddProduct},
		{"view_products", a.runViewProducts},
		{"update_product", a.runUpdateProduct},
		{"remove_product", a.runRemoveProduct},
		{"create_cart", a.runCreateCart},
		{"add_item", a.runAddItem},
		{"remove_item", a.runRemoveItem},
		{"view_cart", a.runViewCart},
		{"checkout", a.runCheckout},
		{"print_stock", a.runPrintStock},
	}

	for _, action := range actions {
		on, err := cmd.Flags().GetBool(action.flag)
		if err != nil {
			return err
		}
		if on {
			return action.run(ctx, cmd)
		}
	}
	return nil
}

func (a *app) runAddProduct(ctx context.Context, cmd *cobra.Command) error {
	req := catalogDomain.CreateProductRequest{
		ID:   stringFlag(cmd, "id"),
		Name: stringFlag(cmd, "name"),
	}
	if cmd.Flags().Changed("price") {
		price, _ := cmd.Flags().GetFloat64("price")
		req.Price = &price
	}
	if cmd.Flags().Changed("quantity") {
		quantity, _ := cmd.Flags().GetInt("quantity")
		req.Quantity = &quantity
	}

	product, err := a.catalog.AddProduct(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrMissingField):
			fmt.Println("Error: All the fields regarding products, (--id, --name, --price, --quantity) are needed to continue.")
			return nil
		case errors.Is(err, catalogRepo.ErrProductConflict):
			fmt.Printf("Error: A product with the ID %s already exists.\n", req.ID)
			return nil
		}
		return err
	}

	fmt.Printf("Product %s added with ID %s, price %v, and quantity %d.\n",
		product.Name, product.ID, product.Price, product.Quantity)
	return nil
}

func (a *app) runViewProducts(ctx context.Context, cmd *cobra.Command) error {
	return a.printCatalog(ctx, "Product List:", "No products found.")
}

func (a *app) runPrintStock(ctx context.Context, cmd *cobra.Command) error {
	return a.printCatalog(ctx, "Stock List:", "No stock available.")
}

func (a *app) printCatalog(ctx context.Context, header, emptyMsg string) error {
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println(emptyMsg)
		return nil
	}
	fmt.Println(header)
	for _, p := range products {
		fmt.Printf("ID: %s, Name: %s, Price: %v, Quantity: %d\n", p.ID, p.Name, p.Price, p.Quantity)
	}
	return nil
}

func (a *app) runUpdateProduct(ctx context.Context, cmd *cobra.Command) error {
	id := stringFlag(cmd, "id")
	if id == "" {
		fmt.Println("Error: Product ID which needs to be updated is not provided.")
		return nil
	}

	req := catalogDomain.UpdateProductRequest{ID: id}
	if cmd.Flags().Changed("name") {
		name := stringFlag(cmd, "name")
		req.Name = &name
	}
	// Nol eksplisit tetap dianggap "dikirim": yang dicek perubahan flag,
	// bukan nilainya.
	if cmd.Flags().Changed("price") {
		price, _ := cmd.Flags().GetFloat64("price")
		req.Price = &price
	}
	if cmd.Flags().Changed("quantity") {
		quantity, _ := cmd.Flags().GetInt("quantity")
		req.Quantity = &quantity
	}

	if _, err := a.catalog.UpdateProduct(ctx, req); err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			fmt.Printf("Error: Product with ID %s was not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Product with ID %s has been updated.\n", id)
	return nil
}

func (a *app) runRemoveProduct(ctx context.Context, cmd *cobra.Command) error {
	id := stringFlag(cmd, "id")
	if id == "" {
		fmt.Println("Error: Product ID which needs to be removed is not provided.")
		return nil
	}

	if err := a.catalog.RemoveProduct(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			fmt.Printf("Error: Product with ID %s was not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Product with ID %s has been removed.\n", id)
	return nil
}

func (a *app) runCreateCart(ctx context.Context, cmd *cobra.Command) error {
	if err := a.cart.CreateCart(ctx); err != nil {
		return err
	}
	fmt.Println("New cart created.")
	return nil
}

func (a *app) runAddItem(ctx context.Context, cmd *cobra.Command) error {
	id := stringFlag(cmd, "id")
	if id == "" {
		fmt.Println("Error: In order to add to cart, the Product ID is needed.")
		return nil
	}
	if !cmd.Flags().Changed("quantity") {
		fmt.Println("Error: In order to add to cart, required quantity is needed.")
		return nil
	}
	quantity, _ := cmd.Flags().GetInt("quantity")
	req := cartService.AddItemRequest{ProductID: id, Quantity: &quantity}

	item, err := a.cart.AddItem(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrProductNotFound):
			fmt.Printf("Error: Product ID %s was not found.\n", id)
			return nil
		case errors.Is(err, catalogRepo.ErrInsufficientStock):
			fmt.Printf("Error: Not enough stock for Product ID %s. Available: %d.\n", id, a.availableStock(ctx, id))
			return nil
		}
		return err
	}

	fmt.Printf("Added %d of %s to the cart.\n", quantity, item.Name)
	return nil
}

// availableStock hanya untuk pesan error; kalau lookup-nya sendiri gagal,
// tampilkan 0 saja.
func (a *app) availableStock(ctx context.Context, id string) int {
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return 0
	}
	for _, p := range products {
		if p.ID == id {
			return p.Quantity
		}
	}
	return 0
}

func (a *app) runRemoveItem(ctx context.Context, cmd *cobra.Command) error {
	id := stringFlag(cmd, "id")
	if id == "" {
		fmt.Println("Error: Product ID is mandatory to remove an item.")
		return nil
	}

	if err := a.cart.RemoveItem(ctx, id); err != nil {
		if errors.Is(err, cartRepo.ErrCartItemNotFound) {
			fmt.Printf("Error: Product with ID %s was not found in the cart.\n", id)
			return nil
		}
		return err
	}

	fmt.Printf("Product with ID %s has been removed from the cart.\n", id)
	return nil
}

func (a *app) runViewCart(ctx context.Context, cmd *cobra.Command) error {
	view, err := a.cart.ViewCart(ctx)
	if err != nil {
		// ValidationError sengaja dibiarkan naik: ini hard failure,
		// bukan pesan lalu lanjut.
		return err
	}
	if len(view.Items) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}

	fmt.Println("Current Cart:")
	for _, it := range view.Items {
		fmt.Printf("%v x %s @ %v each\n", it.Quantity, it.Name, it.Price)
	}
	fmt.Printf("Total: %s\n", view.Total.String())
	return nil
}

func (a *app) runCheckout(ctx context.Context, cmd *cobra.Command) error {
	receipt, err := a.checkout.Checkout(ctx)
	if err != nil {
		if errors.Is(err, checkoutService.ErrEmptyCart) {
			fmt.Println("Error: Cart is empty.")
			return nil
		}
		return err
	}

	fmt.Printf("Checkout complete. Total amount due: %s.\n", receipt.Total.String())
	fmt.Println("Receipt:")
	for _, it := range receipt.Items {
		fmt.Printf("%v x %s @ %v each\n", it.Quantity, it.Name, it.Price)
	}
	fmt.Printf("Total: %s\n", receipt.Total.String())
	return nil
}

func stringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
