package domain

import "time"

// SaleOrigin identifica o canal de aquisição da venda
type SaleOrigin string

const (
	OriginOrganic SaleOrigin = "Orgânico"
	OriginPaid    SaleOrigin = "Pago"
)

// Sale representa uma venda individual, criada manualmente ou expandida a
// partir de uma linha do CSV importado. Ano e Mes são redundantes com Date
// para permitir o filtro mensal sem reparse.
type Sale struct {
	ID          string     `json:"id"`
	Date        string     `json:"data"` // YYYY-MM-DD
	Year        int        `json:"ano"`
	Month       int        `json:"mes"`
	GrossAmount float64    `json:"valorBruto"`
	NetAmount   float64    `json:"valorLiquido"`
	Origin      SaleOrigin `json:"origem"`
	Imported    bool       `json:"importada"`
	CreatedAt   time.Time  `json:"createdAt"`
}
