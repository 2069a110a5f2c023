package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/marketplaceapi"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

func (c *cli) dispatch(ctx context.Context, command string, args []string) error {
	if command == "login" {
		return c.login(ctx, args)
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	switch command {
	case "whoami":
		return c.whoami(ctx, session)
	case "suppliers":
		return c.suppliers(ctx, session)
	case "tieup-status":
		return c.tieUpStatus(ctx, session, args)
	case "request-tieup":
		return c.requestTieUp(ctx, session, args)
	case "accept-tieup":
		return c.acceptTieUp(ctx, session, args)
	case "requests":
		return c.requests(ctx, session)
	case "accepted":
		return c.accepted(ctx, session)
	case "products":
		return c.products(ctx, session)
	case "place-order":
		return c.placeOrder(ctx, session, args)
	case "orders":
		return c.orders(ctx, session)
	case "track":
		return c.track(ctx, session, args)
	case "advance":
		return c.advance(ctx, session, args)
	default:
		return usageError("unknown command " + command)
	}
}

// session resumes the token given by flag or environment
func (c *cli) session(ctx context.Context) (identity.Session, error) {
	if c.token == "" {
		return identity.Session{}, shared.ErrUnauthenticated.WithMessage("No token; run marketctl login and export " + envToken)
	}
	session, err := c.client.Resume(ctx, c.token)
	if err != nil {
		return identity.Session{}, err
	}
	c.log.Debug("Session resumed",
		zap.String("actor_id", session.ActorID.String()),
		zap.String("role", session.Role.String()))
	return session, nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("marketctl login <email> <password>")
	}
	session, expiresAt, err := c.client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s (%s), token expires %s\n",
		title.String(session.Role.String()), session.ActorID, expiresAt.Local().Format("02 Jan 2006 15:04"))
	fmt.Fprintf(c.out, "export %s=%s\n", envToken, session.Token)
	return nil
}

func (c *cli) whoami(ctx context.Context, session identity.Session) error {
	p, err := c.client.Me(ctx, session)
	if err != nil {
		return err
	}
	w := newTable(c.out)
	fmt.Fprintf(w, "Role\t%s\n", title.String(p.Role.String()))
	fmt.Fprintf(w, "Actor\t%s\n", p.ActorID)
	fmt.Fprintf(w, "Name\t%s\n", p.Name)
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	fmt.Fprintf(w, "Contact\t%s\n", p.Contact)
	fmt.Fprintf(w, "Address\t%s\n", p.Address)
	return w.Flush()
}

func (c *cli) suppliers(ctx context.Context, session identity.Session) error {
	suppliers, err := c.client.ListSuppliers(ctx, session)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, len(suppliers))
	for i := range suppliers {
		ids[i] = suppliers[i].ID
	}
	statuses := c.client.TieUpStatuses(ctx, session, ids)

	w := newTable(c.out)
	fmt.Fprintln(w, "ID\tNAME\tCONTACT\tADDRESS\tTIE-UP")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Contact,
			firstNonEmpty(s.DisplayAddress, s.Address), statuses[s.ID])
	}
	return w.Flush()
}

func (c *cli) tieUpStatus(ctx context.Context, session identity.Session, args []string) error {
	supplierID, err := oneID(args, "marketctl tieup-status <supplier-id>")
	if err != nil {
		return err
	}
	status, err := c.client.TieUpStatus(ctx, session, supplierID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, status)
	return nil
}

func (c *cli) requestTieUp(ctx context.Context, session identity.Session, args []string) error {
	supplierID, err := oneID(args, "marketctl request-tieup <supplier-id>")
	if err != nil {
		return err
	}
	t, err := c.client.RequestTieUp(ctx, session, supplierID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Tie-up %s with supplier %s is %s\n", t.ID, t.SupplierID, t.Status)
	return nil
}

func (c *cli) acceptTieUp(ctx context.Context, session identity.Session, args []string) error {
	supermarketID, err := oneID(args, "marketctl accept-tieup <supermarket-id>")
	if err != nil {
		return err
	}
	t, err := c.client.AcceptTieUp(ctx, session, supermarketID, session.ActorID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Tie-up with supermarket %s is %s\n", t.SupermarketID, t.Status)
	return nil
}

func (c *cli) requests(ctx context.Context, session identity.Session) error {
	requests, err := c.client.TieUpRequests(ctx, session)
	if err != nil {
		return err
	}
	w := newTable(c.out)
	fmt.Fprintln(w, "SUPERMARKET\tNAME\tADDRESS\tSTATUS\tREQUESTED")
	for _, r := range requests {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Supermarket.ID, r.Supermarket.Name,
			firstNonEmpty(r.Supermarket.DisplayAddress, r.Supermarket.Address),
			r.TieUp.Status, r.TieUp.RequestedAt.Local().Format("02 Jan 2006"))
	}
	return w.Flush()
}

func (c *cli) accepted(ctx context.Context, session identity.Session) error {
	accepted, err := c.client.ListAcceptedTieUps(ctx, session, session.ActorID)
	if err != nil {
		return err
	}
	w := newTable(c.out)
	fmt.Fprintln(w, "SUPPLIER\tNAME\tCONTACT\tADDRESS")
	for _, a := range accepted {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Supplier.ID, a.Supplier.Name, a.Supplier.Contact,
			firstNonEmpty(a.Supplier.DisplayAddress, a.Supplier.Address))
	}
	return w.Flush()
}

func (c *cli) products(ctx context.Context, session identity.Session) error {
	var (
		products  []marketplaceapi.Product
		suppliers map[uuid.UUID]marketplaceapi.Party
	)
	if session.IsSupplier() {
		own, err := c.client.OwnProducts(ctx, session)
		if err != nil {
			return err
		}
		products = own
	} else {
		catalog, err := c.client.ProductsForOrdering(ctx, session, session.ActorID)
		if err != nil {
			return err
		}
		products, suppliers = catalog.Products, catalog.Suppliers
	}

	w := newTable(c.out)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tSUPPLIER\tPRICE\tSTOCK\tLEVEL")
	for _, p := range products {
		supplier := p.SupplierID.String()
		if s, ok := suppliers[p.SupplierID]; ok {
			supplier = s.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.SKU, p.Name, supplier,
			p.NetPrice.StringFixed(2), p.Stock, p.StockLevel)
	}
	return w.Flush()
}

func (c *cli) placeOrder(ctx context.Context, session identity.Session, args []string) error {
	fs := flag.NewFlagSet("place-order", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	supplier := fs.String("supplier", "", "Supplier ID")
	product := fs.String("product", "", "Product ID")
	sku := fs.String("sku", "", "Product SKU")
	qty := fs.String("qty", "", "Quantity")
	stock := fs.Int("stock", -1, "Known stock; fetched from the catalog when omitted")
	const usage = "marketctl place-order -supplier ID -product ID -qty N [-sku SKU] [-stock N]"
	if err := fs.Parse(args); err != nil {
		return usageError(usage)
	}
	supplierID, err1 := uuid.Parse(*supplier)
	productID, err2 := uuid.Parse(*product)
	if err1 != nil || err2 != nil {
		return usageError(usage)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(*qty))
	if err != nil {
		return shared.ErrInvalidQuantity.WithMessage("Quantity must be a whole number, got " + strconv.Quote(*qty))
	}

	in := marketplaceapi.PlaceOrderInput{
		SupermarketID: session.ActorID,
		SupplierID:    supplierID,
		ProductID:     productID,
		SKU:           *sku,
		Quantity:      quantity,
	}
	if *stock >= 0 {
		in.KnownStock = stock
	} else if quantity > 0 {
		c.fillFromCatalog(ctx, session, &in)
	}
	order, err := c.client.PlaceOrder(ctx, session, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %s placed: %d x %s, %s\n",
		order.ID, order.Quantity, firstNonEmpty(order.ProductName, order.SKU), order.Label())
	return nil
}

// fillFromCatalog takes the stock and SKU from the latest orderable product
// snapshot. A failed fetch only skips the local check.
func (c *cli) fillFromCatalog(ctx context.Context, session identity.Session, in *marketplaceapi.PlaceOrderInput) {
	catalog, err := c.client.ProductsForOrdering(ctx, session, session.ActorID)
	if err != nil {
		c.log.Debug("Catalog fetch failed; the server checks stock", zap.Error(err))
		return
	}
	for _, p := range catalog.Products {
		if p.ID != in.ProductID {
			continue
		}
		stock := p.Stock
		in.KnownStock = &stock
		if in.SKU == "" {
			in.SKU = p.SKU
		}
		return
	}
}

func (c *cli) listOrders(ctx context.Context, session identity.Session) ([]marketplaceapi.OrderSnapshot, error) {
	if session.IsSupplier() {
		return c.client.SupplierOrders(ctx, session)
	}
	return c.client.SupermarketOrders(ctx, session, session.ActorID)
}

func (c *cli) orders(ctx context.Context, session identity.Session) error {
	orders, err := c.listOrders(ctx, session)
	if err != nil {
		return err
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].OrderDate.After(orders[j].OrderDate) })

	w := newTable(c.out)
	fmt.Fprintln(w, "ORDER\tPRODUCT\tQTY\tSTATUS\tTRACKING\tDATE")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", o.ID, firstNonEmpty(o.ProductName, o.SKU), o.Quantity,
			title.String(o.Status.String()), o.Label(), o.OrderDate.Local().Format("02 Jan 2006"))
	}
	return w.Flush()
}

func (c *cli) track(ctx context.Context, session identity.Session, args []string) error {
	orderID, err := oneID(args, "marketctl track <order-id>")
	if err != nil {
		return err
	}
	orders, err := c.listOrders(ctx, session)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.ID == orderID {
			fmt.Fprintln(c.out, o.Label())
			return nil
		}
	}
	return shared.ErrNotFound.WithMessage("No order " + orderID.String() + " for this account")
}

func (c *cli) advance(ctx context.Context, session identity.Session, args []string) error {
	const usage = "marketctl advance <order-id> <accepted|shipped|delivered>"
	if len(args) != 2 {
		return usageError(usage)
	}
	orderID, err := uuid.Parse(args[0])
	if err != nil {
		return usageError(usage)
	}
	order, err := c.client.UpdateOrderStatus(ctx, session, orderID, ordering.Status(strings.ToLower(args[1])))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Order %s is %s: %s\n", order.ID, order.Status, order.Label())
	return nil
}

func oneID(args []string, usage string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, usageError(usage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, usageError(usage)
	}
	return id, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
