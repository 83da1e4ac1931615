package entity

import "time"

// Client representa un cliente al que se factura.
type Client struct {
	ID        string
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
