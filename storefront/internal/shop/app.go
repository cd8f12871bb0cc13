// Package shop wires the cart, the menu client and the cart view into the
// storefront's user-facing actions.
package shop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"pavanxo/storefront/internal/cart"
	"pavanxo/storefront/internal/cartview"
	"pavanxo/storefront/internal/menuclient"

	"go.uber.org/zap"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNotOrderable    = errors.New("cart has entries without a menu item")
	ErrUnknownMenuItem = errors.New("menu item not found")
)

const (
	contactThanks = "Thank you for your message! We will get back to you soon."
	contactAlert  = "Sorry, there was an error submitting your message. Please try again."
)

type MenuAPI interface {
	FetchMenu(ctx context.Context) ([]menuclient.Entry, error)
	FetchPopular(ctx context.Context, limit int) ([]menuclient.PopularItem, error)
	SubmitContact(ctx context.Context, contact menuclient.Contact) (*menuclient.ContactReceipt, error)
	PlaceOrder(ctx context.Context, order menuclient.OrderRequest) (*menuclient.OrderReceipt, error)
}

var _ MenuAPI = (*menuclient.Client)(nil)

type App struct {
	cart     *cart.Engine
	menu     MenuAPI
	renderer cartview.Renderer
	out      io.Writer
	logger   *zap.Logger
}

// New subscribes the cart view to engine so every change prints the
// recomputed cart.
func New(engine *cart.Engine, menu MenuAPI, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		cart:     engine,
		menu:     menu,
		renderer: cartview.Renderer{Out: out},
		out:      out,
		logger:   logger,
	}
	engine.Subscribe(func(items []cart.Item) {
		if err := a.renderer.Refresh(items); err != nil {
			a.logger.Warn("cart render failed", zap.Error(err))
		}
	})
	return a
}

func (a *App) Load(ctx context.Context) {
	a.cart.Load(ctx)
}

// ShowMenu prints nothing when the menu cannot be fetched; the client has
// already logged the failure.
func (a *App) ShowMenu(ctx context.Context, category string) error {
	entries, err := a.menu.FetchMenu(ctx)
	if err != nil {
		return nil
	}
	return menuclient.RenderMenu(a.out, menuclient.FilterCategory(entries, category))
}

func (a *App) AddFromMenu(ctx context.Context, menuItemID, quantity int) (cart.Item, error) {
	entries, err := a.menu.FetchMenu(ctx)
	if err != nil {
		return cart.Item{}, fmt.Errorf("load menu: %w", err)
	}
	for _, e := range entries {
		if e.ID == menuItemID {
			return a.cart.Add(ctx, e.CartItem(quantity))
		}
	}
	return cart.Item{}, fmt.Errorf("%w: %d", ErrUnknownMenuItem, menuItemID)
}

func (a *App) Remove(ctx context.Context, id int64) error {
	n, err := a.cart.Remove(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(a.out, "No cart entry %d.\n", id)
	}
	return nil
}

func (a *App) Increment(ctx context.Context, id int64) error {
	return a.step(ctx, id, a.cart.Increment, fmt.Sprintf("Quantity cannot go above %d.", cart.MaxQuantity))
}

func (a *App) Decrement(ctx context.Context, id int64) error {
	return a.step(ctx, id, a.cart.Decrement, fmt.Sprintf("Quantity cannot go below %d.", cart.MinQuantity))
}

func (a *App) step(ctx context.Context, id int64, fn func(context.Context, int64) (bool, error), rejected string) error {
	changed, err := fn(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(a.out, rejected)
	}
	return nil
}

func (a *App) ShowCart() error {
	return a.renderer.Refresh(a.cart.Items())
}

func (a *App) ShowCount() {
	fmt.Fprintln(a.out, a.cart.TotalCount())
}

// Checkout posts the cart as an order. The cart is left as it is.
func (a *App) Checkout(ctx context.Context) (*menuclient.OrderReceipt, error) {
	order, err := BuildOrder(a.cart.Items())
	if err != nil {
		return nil, err
	}

	receipt, err := a.menu.PlaceOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Order #%d placed: ₹%.0f (%s)\n", receipt.ID, receipt.TotalAmount, receipt.Status)
	if receipt.QRCode != "" {
		fmt.Fprintf(a.out, "Receipt QR code: %s\n", receipt.QRCode)
	}
	return receipt, nil
}

// BuildOrder charges the cart subtotal plus delivery.
func BuildOrder(items []cart.Item) (menuclient.OrderRequest, error) {
	if len(items) == 0 {
		return menuclient.OrderRequest{}, ErrEmptyCart
	}

	lines := make([]menuclient.OrderLine, 0, len(items))
	for _, it := range items {
		if it.MenuItemID <= 0 {
			return menuclient.OrderRequest{}, fmt.Errorf("%w: %q (entry %d)", ErrNotOrderable, it.Name, it.ID)
		}
		lines = append(lines, menuclient.OrderLine{MenuItem: it.MenuItemID, Quantity: it.Quantity})
	}

	return menuclient.OrderRequest{
		Items:       lines,
		TotalAmount: float64(cart.TotalPrice(items) + cartview.DeliveryFee),
		Status:      "pending",
	}, nil
}

// Contact alerts on failure and returns the error so the caller keeps the
// form values for a retry.
func (a *App) Contact(ctx context.Context, contact menuclient.Contact) error {
	if _, err := a.menu.SubmitContact(ctx, contact); err != nil {
		a.logger.Error("contact submission failed", zap.Error(err))
		fmt.Fprintln(a.out, contactAlert)
		return err
	}
	fmt.Fprintln(a.out, contactThanks)
	return nil
}

func (a *App) ShowPopular(ctx context.Context, limit int) error {
	items, err := a.menu.FetchPopular(ctx, limit)
	if err != nil {
		return err
	}
	return menuclient.RenderPopular(a.out, items)
}
