// Package dashboard is the top-level orchestrator: it owns the active-tab
// state, triggers data refetches, wires the list engines, and reconciles
// collections after mutations. Execution is single-goroutine: all calls
// happen from the UI event loop, so no locking is needed. There is no
// request cancellation — a tab switch does not abort an in-flight fetch,
// and the last response to resolve wins (known inconsistency window,
// carried over from the original behavior).
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mustehsanCodes/ali-store-frontend/internal/apierror"
	"github.com/mustehsanCodes/ali-store-frontend/internal/form"
	"github.com/mustehsanCodes/ali-store-frontend/internal/format"
	"github.com/mustehsanCodes/ali-store-frontend/internal/listview"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

// Tab identifies the active screen.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabInventory Tab = "inventory"
	TabSales     Tab = "sales"
	TabLoans     Tab = "loans"
)

// Collection names a client-side cache a mutation may invalidate. A
// mutation declares what it touched; Invalidate refetches only that.
type Collection string

const (
	ColProducts   Collection = "products"
	ColSales      Collection = "sales"
	ColStats      Collection = "stats"
	ColSalesChart Collection = "salesChart"
	ColDailySales Collection = "dailySales"
)

// Controller is the root view-model of the dashboard.
type Controller struct {
	products ProductAPI
	sales    SaleAPI
	stats    StatsAPI
	notifier Notifier
	currency string
	now      func() time.Time

	active      Tab
	Loading     bool
	ChartPeriod model.ChartPeriod
	HasLowStock bool

	Products       []model.Product
	Sales          []model.Sale
	Stats          model.DashboardStats
	SalesChartData []model.SalesChartPoint
	StockChartData []model.StockChartItem
	CategoryData   []model.CategorySlice
	DailySales     []model.DailySalesRow

	ProductList *listview.Engine[model.Product]
	SaleList    *listview.Engine[model.Sale]

	Dialog Dialog
	Loans  *LoansController
}

// NewController wires the controller with its collaborators. pageSize
// sizes every table; currency labels the money in notifications.
func NewController(products ProductAPI, sales SaleAPI, stats StatsAPI, loans LoanAPI, notifier Notifier, pageSize int, currency string) *Controller {
	c := &Controller{
		products:    products,
		sales:       sales,
		stats:       stats,
		notifier:    notifier,
		currency:    currency,
		now:         time.Now,
		ChartPeriod: model.PeriodWeek,
		ProductList: listview.New[model.Product](pageSize),
		SaleList:    listview.New[model.Sale](pageSize),
	}
	c.Loans = newLoansController(loans, notifier, currency, pageSize, c.now)
	c.wireProductList()
	c.wireSaleList()
	return c
}

func (c *Controller) wireProductList() {
	c.ProductList.SearchFields(func(p model.Product) []string {
		return []string{p.Name, p.Category}
	})
	c.ProductList.Predicate("category", func(p model.Product, value string) bool {
		return p.Category == value
	})
	c.ProductList.Predicate("stock", func(p model.Product, value string) bool {
		switch value {
		case "inStock":
			return p.Stock > 0
		case "lowStock":
			return p.Status == model.StockLow
		case "critical":
			return p.Status == model.StockCritical
		default:
			return false
		}
	})
}

func (c *Controller) wireSaleList() {
	c.SaleList.SearchFields(func(s model.Sale) []string {
		return []string{s.ID, s.Description}
	})
	c.SaleList.DateField(func(s model.Sale) time.Time { return s.Date })
	c.SaleList.Predicate("payment", func(s model.Sale, value string) bool {
		return string(s.PaymentMethod) == value
	})
	c.SaleList.Predicate("date", func(s model.Sale, value string) bool {
		today := format.Day(c.now())
		day := format.Day(s.Date)
		switch value {
		case "today":
			return day.Equal(today)
		case "yesterday":
			return day.Equal(today.AddDate(0, 0, -1))
		case "thisWeek":
			return !s.Date.Before(c.now().AddDate(0, 0, -7))
		default:
			return false
		}
	})
}

// ActiveTab returns the currently selected tab.
func (c *Controller) ActiveTab() Tab { return c.active }

// SelectTab activates a tab and refetches its collections. Re-selecting
// the active tab is a no-op: only a state change triggers a fetch.
func (c *Controller) SelectTab(ctx context.Context, tab Tab) {
	if tab == c.active {
		return
	}
	c.active = tab
	c.fetchActiveTab(ctx)
}

// SetChartPeriod switches the sales-chart bucketing. On the dashboard tab
// it refetches exactly the sales-chart series — nothing else.
func (c *Controller) SetChartPeriod(ctx context.Context, period model.ChartPeriod) {
	if period == c.ChartPeriod {
		return
	}
	c.ChartPeriod = period
	if c.active != TabDashboard {
		return
	}
	if err := c.refetch(ctx, ColSalesChart); err != nil {
		c.notifier.Error("Failed to fetch data. Please try again.")
	}
}

// Categories lists the unique product categories for the filter dropdown.
func (c *Controller) Categories() []string { return model.Categories(c.Products) }

// fetchActiveTab loads everything the active tab renders. Any failure
// resets that tab's collections to empty so the view is never left
// half-populated; the loading flag clears on every path.
func (c *Controller) fetchActiveTab(ctx context.Context) {
	c.Loading = true
	defer func() { c.Loading = false }()

	var err error
	switch c.active {
	case TabDashboard:
		err = c.fetchDashboard(ctx)
	case TabInventory:
		err = c.refetch(ctx, ColProducts)
	case TabSales:
		if err = c.refetch(ctx, ColSales); err == nil {
			err = c.refetch(ctx, ColProducts)
		}
	case TabLoans:
		c.Loans.Fetch(ctx)
		return
	}
	if err != nil {
		log.Error().Str("tab", string(c.active)).Err(err).Msg("tab fetch failed")
		c.resetTabState()
		c.notifier.Error("Failed to fetch data. Please try again.")
	}
}

func (c *Controller) fetchDashboard(ctx context.Context) error {
	stats, err := c.stats.Stats(ctx)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	c.Stats = *stats

	if err := c.refetch(ctx, ColSalesChart); err != nil {
		return err
	}
	if c.StockChartData, err = c.stats.StockChart(ctx); err != nil {
		return fmt.Errorf("stock chart: %w", err)
	}
	if c.CategoryData, err = c.stats.CategoryDistribution(ctx); err != nil {
		return fmt.Errorf("category distribution: %w", err)
	}
	if err := c.refetch(ctx, ColSales); err != nil {
		return err
	}
	if err := c.refetch(ctx, ColProducts); err != nil {
		return err
	}
	c.checkLowStock()
	return c.refetch(ctx, ColDailySales)
}

// checkLowStock raises a single aggregate warning when any product's stock
// is below its minimum, and sets the persistent header-badge flag.
func (c *Controller) checkLowStock() {
	count := 0
	for _, p := range c.Products {
		if p.LowStock() {
			count++
		}
	}
	c.HasLowStock = count > 0
	if count > 0 {
		c.notifier.Error(fmt.Sprintf(
			"%d products are below minimum stock threshold. Please check inventory.", count))
	}
}

// LowStockCount returns how many products are currently below minimum.
func (c *Controller) LowStockCount() int {
	count := 0
	for _, p := range c.Products {
		if p.LowStock() {
			count++
		}
	}
	return count
}

// resetTabState empties the failed tab's collections.
func (c *Controller) resetTabState() {
	switch c.active {
	case TabDashboard:
		c.Stats = model.DashboardStats{}
		c.SalesChartData = nil
		c.StockChartData = nil
		c.CategoryData = nil
		c.DailySales = nil
		c.setSales(nil)
		c.setProducts(nil)
	case TabInventory:
		c.setProducts(nil)
	case TabSales:
		c.setSales(nil)
		c.setProducts(nil)
	}
}

// Invalidate refetches only the named collections. Mutations declare what
// they touched instead of refetching the world.
func (c *Controller) Invalidate(ctx context.Context, cols ...Collection) {
	for _, col := range cols {
		if err := c.refetch(ctx, col); err != nil {
			log.Error().Str("collection", string(col)).Err(err).Msg("invalidation refetch failed")
			c.notifier.Error("Failed to fetch data. Please try again.")
			return
		}
	}
}

func (c *Controller) refetch(ctx context.Context, col Collection) error {
	switch col {
	case ColProducts:
		products, err := c.products.List(ctx)
		if err != nil {
			return fmt.Errorf("products: %w", err)
		}
		c.setProducts(products)
	case ColSales:
		sales, err := c.sales.List(ctx)
		if err != nil {
			return fmt.Errorf("sales: %w", err)
		}
		c.setSales(sales)
	case ColStats:
		stats, err := c.stats.Stats(ctx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		c.Stats = *stats
	case ColSalesChart:
		points, err := c.stats.SalesChart(ctx, c.ChartPeriod)
		if err != nil {
			return fmt.Errorf("sales chart: %w", err)
		}
		c.SalesChartData = points
	case ColDailySales:
		rows, err := c.stats.DailySales(ctx)
		if err != nil {
			return fmt.Errorf("daily sales: %w", err)
		}
		c.DailySales = rows
	}
	return nil
}

func (c *Controller) setProducts(products []model.Product) {
	c.Products = products
	c.ProductList.SetItems(products)
}

func (c *Controller) setSales(sales []model.Sale) {
	c.Sales = sales
	c.SaleList.SetItems(sales)
}

// stockInvalidations is the refresh set for any mutation that changed
// stock: products always, plus the dashboard aggregates when that tab is
// showing them.
func (c *Controller) stockInvalidations() []Collection {
	cols := []Collection{ColProducts}
	if c.active == TabDashboard {
		cols = append(cols, ColStats, ColDailySales)
	}
	return cols
}

// statsInvalidations is the refresh set for mutations that changed totals
// but not stock (manual sales).
func (c *Controller) statsInvalidations() []Collection {
	if c.active == TabDashboard {
		return []Collection{ColStats, ColDailySales}
	}
	return nil
}

// ── Product mutations ────────────────────────────────────────────────────────

// SubmitProductForm submits the add/edit product dialog. Returns true when
// the record was saved; validation errors stay inline on the form.
func (c *Controller) SubmitProductForm(ctx context.Context, f *form.ProductForm) bool {
	editing := f.Editing()
	err := f.Submit(ctx, c.products, func(saved model.Product) {
		if editing {
			c.setProducts(replaceProduct(c.Products, saved))
			c.notifier.Success("Product information has been updated.")
		} else {
			c.setProducts(append(c.Products, saved))
			c.notifier.Success("New product has been added to inventory.")
		}
		c.Dialog.Close()
	})
	if err == nil {
		return true
	}
	if !errors.Is(err, form.ErrInvalidDraft) {
		fallback := "Failed to add product. Please try again."
		if editing {
			fallback = "Failed to update product. Please try again."
		}
		c.notifier.Error(apierror.UserMessage(err, fallback))
	}
	return false
}

// DeleteProduct removes a product. A failed delete leaves the list as is.
func (c *Controller) DeleteProduct(ctx context.Context, id string) {
	if err := c.products.Delete(ctx, id); err != nil {
		c.notifier.Error(apierror.UserMessage(err, "Failed to delete product. Please try again."))
		return
	}
	c.setProducts(removeProduct(c.Products, id))
	c.notifier.Success("Product has been removed from inventory.")
}

// ── Sale mutations ───────────────────────────────────────────────────────────

// SubmitSaleForm submits the new/edit sale dialog. Stock changed
// server-side, so the product collection (and dashboard aggregates when
// visible) is refetched afterwards.
func (c *Controller) SubmitSaleForm(ctx context.Context, f *form.SaleForm) bool {
	editing := f.Editing()
	err := f.Submit(ctx, c.sales, func(saved model.Sale) {
		if editing {
			c.setSales(replaceSale(c.Sales, saved))
			c.notifier.Success("Sale has been updated successfully.")
		} else {
			c.setSales(append([]model.Sale{saved}, c.Sales...))
			c.notifier.Success(fmt.Sprintf("Sale of %s has been recorded with %s profit.",
				format.Money(saved.Total, c.currency), format.Money(saved.Profit, c.currency)))
		}
		c.Dialog.Close()
		c.Invalidate(ctx, c.stockInvalidations()...)
	})
	if err == nil {
		return true
	}
	if !errors.Is(err, form.ErrInvalidDraft) {
		fallback := "Failed to add sale. Please try again."
		if editing {
			fallback = "Failed to update sale. Please try again."
		}
		c.notifier.Error(apierror.UserMessage(err, fallback))
	}
	return false
}

// SubmitManualSaleForm submits the manual-sale dialog. Manual sales don't
// touch stock, so only the dashboard aggregates are refreshed.
func (c *Controller) SubmitManualSaleForm(ctx context.Context, f *form.ManualSaleForm) bool {
	editing := f.Editing()
	err := f.Submit(ctx, c.sales, func(saved model.Sale) {
		if editing {
			c.setSales(replaceSale(c.Sales, saved))
			c.notifier.Success("Manual sale has been updated successfully.")
		} else {
			c.setSales(append([]model.Sale{saved}, c.Sales...))
			c.notifier.Success(fmt.Sprintf("Manual sale of %s has been recorded with %s profit.",
				format.Money(saved.Total, c.currency), format.Money(saved.Profit, c.currency)))
		}
		c.Dialog.Close()
		c.Invalidate(ctx, c.statsInvalidations()...)
	})
	if err == nil {
		return true
	}
	if !errors.Is(err, form.ErrInvalidDraft) {
		fallback := "Failed to add manual sale. Please try again."
		if editing {
			fallback = "Failed to update manual sale. Please try again."
		}
		c.notifier.Error(apierror.UserMessage(err, fallback))
	}
	return false
}

// EditSaleDialog opens the right edit dialog for a sale: manual sales get
// the figures form, itemized sales the line-item form.
func (c *Controller) EditSaleDialog(sale model.Sale) {
	s := sale
	if sale.IsManual {
		c.Dialog = Dialog{Kind: DialogEditManualSale, Sale: &s}
	} else {
		c.Dialog = Dialog{Kind: DialogEditSale, Sale: &s}
	}
}

// DeleteSale removes a sale; the server restores its stock, so the product
// collection is refetched. A failed delete leaves the list as is.
func (c *Controller) DeleteSale(ctx context.Context, id string) {
	if err := c.sales.Delete(ctx, id); err != nil {
		c.notifier.Error(apierror.UserMessage(err, "Failed to delete sale. Please try again."))
		return
	}
	c.setSales(removeSale(c.Sales, id))
	c.Invalidate(ctx, c.stockInvalidations()...)
	c.notifier.Success("Sale has been deleted successfully.")
}

// ── list reconciliation helpers ──────────────────────────────────────────────

func replaceProduct(products []model.Product, updated model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		if p.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = p
		}
	}
	return out
}

func removeProduct(products []model.Product, id string) []model.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func replaceSale(sales []model.Sale, updated model.Sale) []model.Sale {
	out := make([]model.Sale, len(sales))
	for i, s := range sales {
		if s.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = s
		}
	}
	return out
}

func removeSale(sales []model.Sale, id string) []model.Sale {
	out := sales[:0:0]
	for _, s := range sales {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}
