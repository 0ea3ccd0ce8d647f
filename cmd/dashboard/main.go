// Command dashboard runs the Karyana store dashboard against a remote
// backend and renders the selected tab as text tables. It is the console
// front end over the same controllers the web UI drives.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mustehsanCodes/ali-store-frontend/internal/apiclient"
	"github.com/mustehsanCodes/ali-store-frontend/internal/config"
	"github.com/mustehsanCodes/ali-store-frontend/internal/dashboard"
	"github.com/mustehsanCodes/ali-store-frontend/internal/format"
	"github.com/mustehsanCodes/ali-store-frontend/internal/model"
)

func main() {
	tab := flag.String("tab", "dashboard", "tab to render: dashboard | inventory | sales | loans")
	search := flag.String("search", "", "search term applied to the tab's table")
	flag.Parse()

	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	client := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout())
	ctrl := dashboard.NewController(
		client.Products, client.Sales, client.Dashboard, client.Loans,
		dashboard.LogNotifier{}, cfg.PageSize, cfg.CurrencyLabel)
	ctrl.ChartPeriod = model.ChartPeriod(cfg.ChartPeriod)

	ctx := context.Background()
	ctrl.SelectTab(ctx, dashboard.Tab(*tab))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch ctrl.ActiveTab() {
	case dashboard.TabDashboard:
		renderStats(w, ctrl, cfg.CurrencyLabel)
	case dashboard.TabInventory:
		if *search != "" {
			ctrl.ProductList.SetSearch(*search)
		}
		renderProducts(w, ctrl, cfg.CurrencyLabel)
	case dashboard.TabSales:
		if *search != "" {
			ctrl.SaleList.SetSearch(*search)
		}
		renderSales(w, ctrl, cfg.CurrencyLabel)
	case dashboard.TabLoans:
		if *search != "" {
			ctrl.Loans.List.SetSearch(*search)
		}
		renderLoans(w, ctrl, cfg.CurrencyLabel)
	default:
		log.Fatal().Str("tab", *tab).Msg("unknown tab")
	}
}

func renderStats(w *tabwriter.Writer, ctrl *dashboard.Controller, currency string) {
	s := ctrl.Stats
	fmt.Fprintf(w, "Total Products\t%d\n", s.TotalProducts)
	fmt.Fprintf(w, "Low Stock Products\t%d\n", s.LowStockProducts)
	fmt.Fprintf(w, "Total Sales\t%d\n", s.TotalSales)
	fmt.Fprintf(w, "Total Revenue\t%s\n", format.Money(s.TotalRevenue, currency))
	fmt.Fprintf(w, "Total Profit\t%s\n", format.Money(s.TotalProfit, currency))
	if len(ctrl.DailySales) > 0 {
		fmt.Fprintln(w, "\nDATE\tSALES\tREVENUE\tPROFIT")
		for _, row := range ctrl.DailySales {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				row.Date, row.SalesCount,
				format.Money(row.Revenue, currency), format.Money(row.Profit, currency))
		}
	}
}

func renderProducts(w *tabwriter.Writer, ctrl *dashboard.Controller, currency string) {
	fmt.Fprintln(w, "NAME\tCATEGORY\tPURCHASE\tSALE\tSTOCK\tSTATUS")
	for _, p := range ctrl.ProductList.Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v %s\t%s\n",
			p.Name, p.Category,
			format.Money(p.PurchasePrice, currency), format.Money(p.SalePrice, currency),
			p.Stock, p.Unit, p.Status)
	}
	fmt.Fprintf(w, "\nPage %d of %d\n", ctrl.ProductList.Page(), ctrl.ProductList.TotalPages())
}

func renderSales(w *tabwriter.Writer, ctrl *dashboard.Controller, currency string) {
	fmt.Fprintln(w, "DATE\tITEMS\tMETHOD\tTOTAL\tPROFIT")
	for _, s := range ctrl.SaleList.Visible() {
		kind := fmt.Sprintf("%d items", len(s.Items))
		if s.IsManual {
			kind = "manual"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			format.ShortDate(s.Date), kind, s.PaymentMethod,
			format.Money(s.Total, currency), format.Money(s.Profit, currency))
	}
	fmt.Fprintf(w, "\nPage %d of %d\n", ctrl.SaleList.Page(), ctrl.SaleList.TotalPages())
}

func renderLoans(w *tabwriter.Writer, ctrl *dashboard.Controller, currency string) {
	fmt.Fprintln(w, "CUSTOMER\tAMOUNT\tPAID\tREMAINING\tPROGRESS\tSTATUS")
	for _, l := range ctrl.Loans.List.Visible() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\t%s\n",
			l.CustomerName,
			format.Money(l.LoanAmount, currency),
			format.Money(l.TotalPaid(), currency),
			format.Money(l.Remaining(), currency),
			l.Progress(), l.Status)
	}
	fmt.Fprintf(w, "\nPage %d of %d\n", ctrl.Loans.List.Page(), ctrl.Loans.List.TotalPages())
}
