package entity

// Labels textos configurables que imprime cada plantilla.
type Labels struct {
	Title        string
	Subtitle     string
	BillTo       string
	ShipTo       string
	Date         string
	DueDate      string
	PONumber     string
	PaymentTerms string
	Item         string
	Quantity     string
	Rate         string
	Amount       string
	Subtotal     string
	Discount     string
	Tax          string
	Shipping     string
	Total        string
	AmountPaid   string
	BalanceDue   string
	Notes        string
	Terms        string
}

// DefaultLabels textos por defecto en inglés.
func DefaultLabels() Labels {
	return Labels{
		Title:        "INVOICE",
		Subtitle:     "Thank you for your business",
		BillTo:       "Bill To",
		ShipTo:       "Ship To",
		Date:         "Date",
		DueDate:      "Due Date",
		PONumber:     "PO Number",
		PaymentTerms: "Payment Terms",
		Item:         "Item",
		Quantity:     "Quantity",
		Rate:         "Rate",
		Amount:       "Amount",
		Subtotal:     "Subtotal",
		Discount:     "Discount",
		Tax:          "Tax",
		Shipping:     "Shipping",
		Total:        "Total",
		AmountPaid:   "Amount Paid",
		BalanceDue:   "Balance Due",
		Notes:        "Notes",
		Terms:        "Terms",
	}
}

// WithDefaults completa los campos vacíos con DefaultLabels.
func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&l.Title, d.Title)
	fill(&l.Subtitle, d.Subtitle)
	fill(&l.BillTo, d.BillTo)
	fill(&l.ShipTo, d.ShipTo)
	fill(&l.Date, d.Date)
	fill(&l.DueDate, d.DueDate)
	fill(&l.PONumber, d.PONumber)
	fill(&l.PaymentTerms, d.PaymentTerms)
	fill(&l.Item, d.Item)
	fill(&l.Quantity, d.Quantity)
	fill(&l.Rate, d.Rate)
	fill(&l.Amount, d.Amount)
	fill(&l.Subtotal, d.Subtotal)
	fill(&l.Discount, d.Discount)
	fill(&l.Tax, d.Tax)
	fill(&l.Shipping, d.Shipping)
	fill(&l.Total, d.Total)
	fill(&l.AmountPaid, d.AmountPaid)
	fill(&l.BalanceDue, d.BalanceDue)
	fill(&l.Notes, d.Notes)
	fill(&l.Terms, d.Terms)
	return l
}
