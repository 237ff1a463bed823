package entity

import (
	"strings"
	"time"
)

// Tipos de movimiento de inventario. La cantidad siempre es positiva;
// el tipo define el signo del ajuste sobre el stock.
const (
	MovementEntrada           = "ENTRADA"
	MovementSalida            = "SALIDA"
	MovementAjustePositivo    = "AJUSTE_POSITIVO"
	MovementAjusteNegativo    = "AJUSTE_NEGATIVO"
	MovementAjusteInicial     = "AJUSTE_INICIAL"
	MovementEntradaProveedor  = "ENTRADA_PROVEEDOR"
	MovementSalidaVenta       = "SALIDA_VENTA"
	MovementAjusteConteoMas   = "AJUSTE_CONTEO_MAS"
	MovementAjusteConteoMenos = "AJUSTE_CONTEO_MENOS"
	MovementDevolucionCliente = "DEVOLUCION_CLIENTE"
)

// Movement representa un movimiento de inventario: historial inmutable,
// solo se crea, nunca se actualiza ni se borra en el flujo normal.
type Movement struct {
	ID            string
	ProductID     string
	Type          string
	Quantity      int64 // siempre positiva; la dirección la da Type
	Date          time.Time
	ResponsibleID *string
	Notes         *string
}

// ProductRef resumen de producto embebido en las respuestas de movimientos.
type ProductRef struct {
	ID   string
	Name string
	SKU  *string
}

// UserRef resumen del usuario responsable de un movimiento.
type UserRef struct {
	ID       string
	Username string
}

// MovementDetail movimiento enriquecido con los resúmenes de producto y responsable.
type MovementDetail struct {
	Movement
	Product     ProductRef
	Responsible *UserRef // nil si el movimiento fue automático
}

// DeltaFor traduce un tipo de movimiento a su ajuste con signo sobre el stock.
// Un tipo no reconocido devuelve 0: el movimiento se registra igualmente pero
// el stock no se ajusta (comportamiento documentado, heredado del sistema).
func DeltaFor(movementType string, quantity int64) int64 {
	switch strings.ToUpper(movementType) {
	case MovementEntrada, MovementAjustePositivo, MovementAjusteInicial,
		MovementEntradaProveedor, MovementAjusteConteoMas, MovementDevolucionCliente:
		return quantity
	case MovementSalida, MovementAjusteNegativo,
		MovementSalidaVenta, MovementAjusteConteoMenos:
		return -quantity
	}
	return 0
}
