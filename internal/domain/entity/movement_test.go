package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sclconsulting/inventario-api/internal/domain/entity"
)

func TestDeltaFor_TablaDeSignos(t *testing.T) {
	cases := []struct {
		tipo string
		want int64
	}{
		{entity.MovementEntrada, 10},
		{entity.MovementAjustePositivo, 10},
		{entity.MovementAjusteInicial, 10},
		{entity.MovementEntradaProveedor, 10},
		{entity.MovementAjusteConteoMas, 10},
		{entity.MovementDevolucionCliente, 10},
		{entity.MovementSalida, -10},
		{entity.MovementAjusteNegativo, -10},
		{entity.MovementSalidaVenta, -10},
		{entity.MovementAjusteConteoMenos, -10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.DeltaFor(c.tipo, 10), "tipo %s", c.tipo)
	}
}

func TestDeltaFor_CaseInsensitive(t *testing.T) {
	assert.Equal(t, int64(5), entity.DeltaFor("entrada", 5))
	assert.Equal(t, int64(-5), entity.DeltaFor("Salida", 5))
	assert.Equal(t, int64(5), entity.DeltaFor("ajuste_inicial", 5))
}

// Un tipo no reconocido no ajusta el stock: el movimiento queda en el
// historial pero su delta es cero.
func TestDeltaFor_TipoDesconocido(t *testing.T) {
	assert.Equal(t, int64(0), entity.DeltaFor("TRANSFERENCIA", 5))
	assert.Equal(t, int64(0), entity.DeltaFor("", 5))
}
