package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

const usage = `expected a subcommand: inventory | summary | add | search | deliver | order | orders | clear-orders`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	db := openStore()
	svc := service.NewInventoryService(db)

	switch os.Args[1] {
	case "inventory":
		listInventory(db)
	case "summary":
		printSummary(db)
	case "add":
		addCmd := flag.NewFlagSet("add", flag.ExitOnError)
		name := addCmd.String("name", "", "Product name (required)")
		manufacturer := addCmd.String("manufacturer", "", "Manufacturer")
		barcode := addCmd.String("barcode", "", "Barcode (must be unique)")
		stock := addCmd.Int("stock", 0, "Initial stock")
		expiry := addCmd.String("expiry", "", "Expiry date YYYY-MM-DD")
		minStock := addCmd.Int("min-stock", 0, "Reorder threshold (default 5)")
		addCmd.Parse(os.Args[2:])
		addProduct(svc, &models.Product{
			Name:         *name,
			Manufacturer: *manufacturer,
			Barcode:      *barcode,
			Stock:        *stock,
			Expiry:       *expiry,
			MinStock:     *minStock,
		})
	case "search":
		searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
		query := searchCmd.String("q", "", "Barcode or partial product name")
		searchCmd.Parse(os.Args[2:])
		search(svc, *query)
	case "deliver":
		deliverCmd := flag.NewFlagSet("deliver", flag.ExitOnError)
		id := deliverCmd.Int("id", 0, "Product id")
		qty := deliverCmd.Int("qty", 1, "Delivered quantity (negative for consumption)")
		deliverCmd.Parse(os.Args[2:])
		deliver(svc, *id, *qty)
	case "order":
		orderCmd := flag.NewFlagSet("order", flag.ExitOnError)
		id := orderCmd.Int("id", 0, "Product id")
		qty := orderCmd.Int("qty", 1, "Order quantity")
		orderCmd.Parse(os.Args[2:])
		placeOrder(svc, *id, *qty)
	case "orders":
		listOrders(db)
	case "clear-orders":
		clearOrders(svc)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./inventory.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running cli before server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func listInventory(db *store.Store) {
	products, err := db.ListProducts()
	if err != nil {
		log.Fatalf("Failed to list inventory: %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANUFACTURER\tBARCODE\tSTOCK\tEXPIRY\tLOW")
	for _, p := range products {
		low := ""
		if p.LowStock {
			low = "!!"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, p.Manufacturer, p.Barcode, p.Stock, p.Expiry, low)
	}
	tw.Flush()
}

func printSummary(db *store.Store) {
	summary, err := db.Summary()
	if err != nil {
		log.Fatalf("Failed to load summary: %v", err)
	}
	fmt.Printf("products: %d\nlow stock: %d\nout of stock: %d\npending orders: %d\n",
		summary.Products, summary.LowStock, summary.OutOfStock, summary.PendingOrders)
}

func addProduct(svc *service.InventoryService, p *models.Product) {
	if err := svc.AddProduct(p); err != nil {
		log.Fatalf("Failed to add product: %v", err)
	}
	fmt.Printf("Product '%s' created with id %d.\n", p.Name, p.ID)
}

func search(svc *service.InventoryService, query string) {
	if query == "" {
		log.Fatal("-q is required")
	}
	p, err := svc.Lookup(query)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	if p == nil {
		fmt.Println("No product matched.")
		return
	}
	fmt.Printf("[%d] %s (%s)  stock=%d  expiry=%s  barcode=%s\n",
		p.ID, p.Name, p.Manufacturer, p.Stock, p.Expiry, p.Barcode)
}

func deliver(svc *service.InventoryService, id, qty int) {
	p, err := svc.AdjustStock(id, qty)
	if err != nil {
		log.Fatalf("Failed to update stock: %v", err)
	}
	fmt.Printf("Stock for '%s' is now %d.\n", p.Name, p.Stock)
}

func placeOrder(svc *service.InventoryService, id, qty int) {
	orderID, err := svc.PlaceOrder(id, qty)
	if err != nil {
		log.Fatalf("Failed to place order: %v", err)
	}
	fmt.Printf("Order %d added to the pending list.\n", orderID)
}

func listOrders(db *store.Store) {
	orders, err := db.PendingOrders()
	if err != nil {
		log.Fatalf("Failed to list orders: %v", err)
	}
	if len(orders) == 0 {
		fmt.Println("No pending orders.")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANUFACTURER\tQTY\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", o.ID, o.Name, o.Manufacturer, o.Quantity, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func clearOrders(svc *service.InventoryService) {
	cleared, err := svc.MarkOrdered()
	if err != nil {
		log.Fatalf("Failed to clear orders: %v", err)
	}
	fmt.Printf("%d orders marked as ordered.\n", cleared)
}
