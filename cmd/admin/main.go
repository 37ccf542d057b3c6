// Command admin is the administrator console: it logs in against the API,
// then drives the catalog, order workflow and user directory views.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Dhruv435/slugma-admin/internal/api"
	"github.com/Dhruv435/slugma-admin/internal/dashboard"
	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/Dhruv435/slugma-admin/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, os.Args[2:])
	case "logout":
		runLogout()
	case "orders":
		runOrders(ctx, os.Args[2:])
	case "products":
		runProducts(ctx, os.Args[2:])
	case "users":
		runUsers(ctx, os.Args[2:])
	case "stats":
		runStats(ctx)
	case "seed-admin":
		runSeedAdmin(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: admin <login|logout|orders|products|users|stats|seed-admin> [flags]")
}

func apiBaseURL() string {
	if url := os.Getenv("ADMIN_API_URL"); url != "" {
		return url
	}
	return "http://localhost:3001"
}

func session() *dashboard.Session {
	path := os.Getenv("ADMIN_TOKEN_FILE")
	if path == "" {
		var err error
		path, err = dashboard.DefaultSessionPath()
		if err != nil {
			log.Fatalf("Failed to resolve token path: %v", err)
		}
	}
	return dashboard.LoadSession(path)
}

// client requires an authenticated session; the token rides along on every
// admin-scoped request.
func client() *api.Client {
	sess := session()
	if !sess.Authenticated() {
		fmt.Println("❌ You are not logged in. Run 'admin login' first.")
		os.Exit(1)
	}
	c := api.New(apiBaseURL())
	c.SetToken(sess.Token())
	return c
}

func confirmPrompt(prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func runLogin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Admin username")
	password := fs.String("password", "", "Admin password")
	fs.Parse(args)
	if *username == "" || *password == "" {
		fmt.Println("username and password are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	c := api.New(apiBaseURL())
	token, err := c.Login(ctx, *username, *password)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if err := session().Save(token); err != nil {
		log.Fatalf("Failed to persist token: %v", err)
	}
	fmt.Printf("✅ Logged in as %s.\n", *username)
}

func runLogout() {
	if err := session().Clear(); err != nil {
		log.Fatalf("Failed to clear session: %v", err)
	}
	fmt.Println("✅ Logged out.")
}

func runOrders(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("expected 'list', 'edit' or 'deliver' subcommand")
		os.Exit(1)
	}

	workflow := dashboard.NewOrderWorkflow(client(), confirmPrompt)

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("orders list", flag.ExitOnError)
		history := fs.Bool("history", false, "Show the order history instead of active orders")
		fs.Parse(args[1:])
		if err := workflow.Load(ctx, *history); err != nil {
			fmt.Printf("❌ Failed to load orders: %v\n", err)
			os.Exit(1)
		}
		printOrders(workflow.Orders())
	case "edit":
		fs := flag.NewFlagSet("orders edit", flag.ExitOnError)
		id := fs.Int("id", 0, "Order ID")
		status := fs.String("status", "", "New order status")
		delivery := fs.String("delivery", "", "New delivery option")
		message := fs.String("message", "", "Admin message")
		fs.Parse(args[1:])
		if *id == 0 {
			fmt.Println("id is required")
			os.Exit(1)
		}
		if err := workflow.Load(ctx, false); err != nil {
			fmt.Printf("❌ Failed to load orders: %v\n", err)
			os.Exit(1)
		}
		if !workflow.BeginEdit(*id) {
			fmt.Println(workflow.Banner())
			os.Exit(1)
		}
		ok := true
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "status":
				if !workflow.SetDraftStatus(models.OrderStatus(*status)) {
					fmt.Printf("❌ Invalid status %q. Choices: %v\n", *status, workflow.StatusChoices())
					ok = false
				}
			case "delivery":
				if !workflow.SetDraftDelivery(*delivery) {
					fmt.Printf("❌ Invalid delivery option %q. Choices: %v\n", *delivery, models.DeliveryOptions)
					ok = false
				}
			case "message":
				workflow.SetDraftMessage(*message)
			}
		})
		if !ok {
			os.Exit(1)
		}
		if err := workflow.SaveEdit(ctx); err != nil {
			fmt.Println(workflow.Banner())
			os.Exit(1)
		}
		fmt.Println(workflow.Banner())
	case "deliver":
		fs := flag.NewFlagSet("orders deliver", flag.ExitOnError)
		id := fs.Int("id", 0, "Order ID")
		fs.Parse(args[1:])
		if *id == 0 {
			fmt.Println("id is required")
			os.Exit(1)
		}
		if err := workflow.Load(ctx, false); err != nil {
			fmt.Printf("❌ Failed to load orders: %v\n", err)
			os.Exit(1)
		}
		if err := workflow.MarkDelivered(ctx, *id); err != nil {
			fmt.Println(workflow.Banner())
			os.Exit(1)
		}
		if b := workflow.Banner(); !b.Empty() {
			fmt.Println(b)
		}
	default:
		fmt.Println("expected 'list', 'edit' or 'deliver' subcommand")
		os.Exit(1)
	}
}

func printOrders(orders []models.Order) {
	if len(orders) == 0 {
		fmt.Println("No orders found.")
		return
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tTOTAL\tSTATUS\tDELIVERY\tMESSAGE")
	for _, o := range orders {
		user := o.User.Username
		if o.User.MobileNumber != "" {
			user = fmt.Sprintf("%s (%s)", o.User.Username, o.User.MobileNumber)
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
			o.ID, user, o.TotalPrice, o.Status, renderStages(o.DeliveryOption), o.AdminMessage)
	}
	tw.Flush()
}

// renderStages draws the delivery progression: ✔ completed, ● active,
// ○ pending.
func renderStages(current string) string {
	var sb strings.Builder
	for _, stage := range models.DeliveryStages(current) {
		switch stage.State {
		case models.StageCompleted:
			sb.WriteString("✔")
		case models.StageActive:
			sb.WriteString("●")
		default:
			sb.WriteString("○")
		}
	}
	return sb.String()
}

func runProducts(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("expected 'list', 'add', 'update' or 'delete' subcommand")
		os.Exit(1)
	}

	c := client()

	switch args[0] {
	case "list":
		catalog := dashboard.NewProductCatalog(c, confirmPrompt)
		if err := catalog.Load(ctx); err != nil {
			fmt.Printf("❌ Failed to load products: %v\n", err)
			os.Exit(1)
		}
		printProducts(catalog.Products())
	case "delete":
		fs := flag.NewFlagSet("products delete", flag.ExitOnError)
		id := fs.Int("id", 0, "Product ID")
		fs.Parse(args[1:])
		if *id == 0 {
			fmt.Println("id is required")
			os.Exit(1)
		}
		catalog := dashboard.NewProductCatalog(c, confirmPrompt)
		if err := catalog.Load(ctx); err != nil {
			fmt.Printf("❌ Failed to load products: %v\n", err)
			os.Exit(1)
		}
		if err := catalog.Delete(ctx, *id); err != nil {
			fmt.Println(catalog.Banner())
			os.Exit(1)
		}
		if b := catalog.Banner(); !b.Empty() {
			fmt.Println(b)
		}
	case "add":
		form := dashboard.NewProductForm(c)
		submitProductForm(ctx, form, args[1:], 0)
	case "update":
		// Peek at -id first; the remaining flags parse in submitProductForm.
		rest := args[1:]
		id := 0
		for i, a := range rest {
			if (a == "-id" || a == "--id") && i+1 < len(rest) {
				id, _ = strconv.Atoi(rest[i+1])
			}
		}
		if id == 0 {
			fmt.Println("id is required")
			os.Exit(1)
		}
		form := dashboard.NewProductForm(c)
		if err := form.LoadForEdit(ctx, id); err != nil {
			fmt.Printf("❌ Failed to load product: %v\n", err)
			os.Exit(1)
		}
		submitProductForm(ctx, form, rest, id)
	default:
		fmt.Println("expected 'list', 'add', 'update' or 'delete' subcommand")
		os.Exit(1)
	}
}

func submitProductForm(ctx context.Context, form *dashboard.ProductForm, args []string, id int) {
	fs := flag.NewFlagSet("product form", flag.ExitOnError)
	fs.Int("id", id, "Product ID")
	name := fs.String("name", "", "Product name")
	description := fs.String("description", "", "Short description")
	more := fs.String("more", "", "Long-form feature list")
	price := fs.String("price", "", "Price")
	salePrice := fs.String("sale-price", "", "Sale price (must be below price)")
	category := fs.String("category", "", "Category: "+strings.Join(models.Categories, ", "))
	material := fs.String("material", "", "Material (depends on category)")
	stock := fs.String("stock", "", "Stock count")
	sku := fs.String("sku", "", "SKU")
	genSKU := fs.Bool("generate-sku", false, "Generate a random SKU")
	brand := fs.String("brand", "", "Brand")
	weight := fs.String("weight", "", "Weight")
	length := fs.String("length", "", "Length")
	width := fs.String("width", "", "Width")
	height := fs.String("height", "", "Height")
	sizes := fs.String("sizes", "", "Comma-separated sizes to toggle")
	colors := fs.String("colors", "", "Comma-separated colors to toggle")
	tags := fs.String("tags", "", "Comma-separated tags to add")
	image := fs.String("image", "", "Path to a product image (png/jpg)")
	fs.Parse(args)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			form.SetName(*name)
		case "description":
			form.SetDescription(*description)
		case "more":
			form.SetMoreDescription(*more)
		case "price":
			form.SetPrice(*price)
		case "sale-price":
			form.SetSalePrice(*salePrice)
		case "category":
			form.SetCategory(*category)
		case "stock":
			form.SetStock(*stock)
		case "sku":
			form.SetSKU(*sku)
		case "brand":
			form.SetBrand(*brand)
		case "weight":
			form.SetWeight(*weight)
		case "image":
			form.SetImagePath(*image)
		}
	})
	// Material after category so the allowed set is already in place.
	if *material != "" {
		if !form.SetMaterial(*material) {
			fmt.Printf("❌ Material %q is not available for category %q. Choices: %v\n",
				*material, form.Draft().Category, form.MaterialOptions())
			os.Exit(1)
		}
	}
	if *length != "" || *width != "" || *height != "" {
		d := form.Draft()
		pick := func(v, existing string) string {
			if v != "" {
				return v
			}
			return existing
		}
		form.SetDimensions(pick(*length, d.Length), pick(*width, d.Width), pick(*height, d.Height))
	}
	for _, s := range splitList(*sizes) {
		form.ToggleSize(s)
	}
	for _, col := range splitList(*colors) {
		form.ToggleColor(col)
	}
	for _, tag := range splitList(*tags) {
		form.AddTag(tag)
	}
	if *genSKU {
		form.GenerateSKU()
	}

	if _, err := form.Submit(ctx); err != nil {
		fmt.Println(form.Banner())
		os.Exit(1)
	}
	fmt.Println(form.Banner())
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printProducts(products []models.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSALE\tSTOCK\tSKU\tTAGS")
	for _, p := range products {
		sale := "-"
		if p.SalePrice != nil {
			sale = fmt.Sprintf("%.2f", *p.SalePrice)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\t%d\t%s\t%s\n",
			p.ID, p.Name, p.Category, p.Price, sale, p.Stock, p.SKU, strings.Join(p.Tags, ","))
	}
	tw.Flush()
}

func runUsers(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Println("expected 'list' or 'delete' subcommand")
		os.Exit(1)
	}

	directory := dashboard.NewUserDirectory(client(), confirmPrompt)

	switch args[0] {
	case "list":
		if err := directory.Load(ctx); err != nil {
			fmt.Printf("❌ Failed to load users: %v\n", err)
			os.Exit(1)
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tUSERNAME\tAGE\tMOBILE\tREGISTERED")
		for _, u := range directory.Users() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
				u.ID, u.Username, u.Age, u.MobileNumber, u.CreatedAt.Format("2006-01-02"))
		}
		tw.Flush()
	case "delete":
		fs := flag.NewFlagSet("users delete", flag.ExitOnError)
		id := fs.Int("id", 0, "User ID")
		fs.Parse(args[1:])
		if *id == 0 {
			fmt.Println("id is required")
			os.Exit(1)
		}
		if err := directory.Load(ctx); err != nil {
			fmt.Printf("❌ Failed to load users: %v\n", err)
			os.Exit(1)
		}
		if err := directory.Delete(ctx, *id); err != nil {
			fmt.Println(directory.Banner())
			os.Exit(1)
		}
		if b := directory.Banner(); !b.Empty() {
			fmt.Println(b)
		}
	default:
		fmt.Println("expected 'list' or 'delete' subcommand")
		os.Exit(1)
	}
}

func runStats(ctx context.Context) {
	stats, err := client().Stats(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to load stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Products: %d\nOrders: %d\nUsers: %d\n", stats.TotalProducts, stats.TotalOrders, stats.TotalUsers)
	for status, count := range stats.OrdersByStatus {
		fmt.Printf("  %s: %d\n", status, count)
	}
	if len(stats.LowStock) > 0 {
		fmt.Println("Low stock:")
		for _, sl := range stats.LowStock {
			fmt.Printf("  #%d %s: %d left\n", sl.ProductID, sl.Name, sl.Stock)
		}
	}
}

// runSeedAdmin talks to the database directly; it exists to bootstrap the
// first administrator before the API has anyone to authenticate.
func runSeedAdmin(args []string) {
	fs := flag.NewFlagSet("seed-admin", flag.ExitOnError)
	username := fs.String("username", "", "Username for the new admin")
	password := fs.String("password", "", "Password for the new admin")
	fs.Parse(args)
	if *username == "" || *password == "" {
		fmt.Println("username and password are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./slugma.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure tables exist if running the console before the server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.CreateAdmin(*username, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin '%s' created successfully.\n", *username)
}
