package dashboard

import "github.com/mustehsanCodes/ali-store-frontend/internal/model"

// DialogKind is the single discriminated "active dialog" value per screen.
// At most one dialog is open at a time, which rules out the impossible
// flag combinations a per-dialog boolean per form would allow.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogProductForm
	DialogEditProduct
	DialogProductDetails
	DialogSaleForm
	DialogManualSaleForm
	DialogEditSale
	DialogEditManualSale
	DialogSaleDetails
	DialogLoanForm
	DialogEditLoan
	DialogLoanDetails
	DialogPaymentForm
)

// Dialog pairs the open dialog kind with the record it operates on.
type Dialog struct {
	Kind    DialogKind
	Product *model.Product
	Sale    *model.Sale
	Loan    *model.Loan
}

// Close resets to no dialog.
func (d *Dialog) Close() { *d = Dialog{} }
