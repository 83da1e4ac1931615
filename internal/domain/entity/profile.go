package entity

// FontFamily familia tipográfica del perfil.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// Profile datos del negocio emisor (uno por instalación).
type Profile struct {
	ID                 string
	Name               string
	Email              string
	Address            string
	Phone              string
	LogoURL            string
	BrandColor         string
	TaxID              string
	Currency           string
	DefaultPaymentLink string
	InvoiceFormat      string // ej. "INV-{YYYY}-{NNNN}"
	FontFamily         FontFamily
	Website            string
}

// DefaultProfile perfil inicial cuando el almacenamiento está vacío.
func DefaultProfile() Profile {
	return Profile{
		ID:                 "user-1",
		Name:               "Acme Creative Studio",
		Email:              "hello@acme.studio",
		Address:            "123 Design Blvd, Creative City, CA 90210",
		LogoURL:            "https://picsum.photos/id/64/200/200",
		BrandColor:         "#4f46e5",
		Currency:           "USD",
		DefaultPaymentLink: "https://paypal.me/acmestudio",
		InvoiceFormat:      "INV-{YYYY}-{NNNN}",
		FontFamily:         FontSans,
		Website:            "https://acme.studio",
	}
}
