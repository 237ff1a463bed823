package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es un contador derivado: el único escritor es el registro de
// movimientos; crear/actualizar productos nunca lo toca salvo el valor inicial.
type Product struct {
	ID           string
	Name         string
	Description  *string
	Price        decimal.Decimal // siempre > 0
	Stock        int64           // derivado de los movimientos
	StockMin     int64           // nivel mínimo antes de alerta
	SKU          *string         // único si está presente; NULL nunca colisiona
	SerialNumber *string         // único si está presente
	CategoryID   *string
	SupplierID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
