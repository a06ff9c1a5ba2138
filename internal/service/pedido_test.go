package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

type pedidoFixture struct {
	pedidos     *memPedidos
	clientes    *memClientes
	inventarios *memInventarios
	direcciones *memDirecciones
	svc         *service.PedidoService

	cliente    entity.Cliente
	inventario entity.Inventario
	direccion  entity.Direccion
}

func newPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	f := &pedidoFixture{
		pedidos:     newMemPedidos(),
		clientes:    newMemClientes(),
		inventarios: newMemInventarios(),
		direcciones: newMemDirecciones(),
	}
	f.svc = service.NewPedidoService(f.pedidos, f.clientes, f.inventarios, f.direcciones, nil)

	ctx := context.Background()
	cliente, err := f.clientes.Create(ctx, &entity.Cliente{Identificacion: "118090887", Nombre: "Maria", Apellido: "Solis"})
	require.NoError(t, err)
	f.cliente = *cliente

	inventario, err := f.inventarios.Create(ctx, &entity.Inventario{CantidadEnExistencia: 20, BodegaID: 1, TipoLicor: "Ron"})
	require.NoError(t, err)
	f.inventario = *inventario

	direccion, err := f.direcciones.Create(ctx, &entity.Direccion{ClienteID: cliente.ID, Provincia: "San José"})
	require.NoError(t, err)
	f.direccion = *direccion

	return f
}

func (f *pedidoFixture) validPedido() *entity.Pedido {
	return &entity.Pedido{
		ClienteID:    f.cliente.ID,
		InventarioID: f.inventario.ID,
		DireccionID:  f.direccion.ID,
		Cantidad:     3,
		CostoSinIVA:  1000,
		Estado:       "Pendiente",
	}
}

func TestPedidoCreateComputesTotal(t *testing.T) {
	f := newPedidoFixture(t)

	created, err := f.svc.Create(context.Background(), f.validPedido())
	require.NoError(t, err)
	assert.InDelta(t, 1130.0, created.CostoTotal, 1e-9)

	stored, err := f.pedidos.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.InDelta(t, stored.CostoSinIVA*service.IVARate, stored.CostoTotal, 1e-9)
}

func TestPedidoCreateRejectsMissingReferences(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Pedido)
	}{
		{"missing cliente", func(p *entity.Pedido) { p.ClienteID = 999 }},
		{"missing inventario", func(p *entity.Pedido) { p.InventarioID = 999 }},
		{"missing direccion", func(p *entity.Pedido) { p.DireccionID = 999 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPedidoFixture(t)
			pedido := f.validPedido()
			tt.mutate(pedido)

			_, err := f.svc.Create(context.Background(), pedido)
			assert.ErrorIs(t, err, service.ErrInvalidData)

			rows, err := f.pedidos.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, rows, "nothing may be persisted on a rejected create")
		})
	}
}

func TestPedidoCreateRejectsForeignDireccion(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	otro, err := f.clientes.Create(ctx, &entity.Cliente{Identificacion: "204560123", Nombre: "Carlos", Apellido: "Rojas"})
	require.NoError(t, err)
	ajena, err := f.direcciones.Create(ctx, &entity.Direccion{ClienteID: otro.ID})
	require.NoError(t, err)

	pedido := f.validPedido()
	pedido.DireccionID = ajena.ID

	_, err = f.svc.Create(ctx, pedido)
	assert.ErrorIs(t, err, service.ErrInvalidData)
}

func TestPedidoUpdateSkipsReferenceValidation(t *testing.T) {
	// Update deliberately does not revalidate the references; it can repoint the
	// pedido to rows that do not exist.
	f := newPedidoFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.validPedido())
	require.NoError(t, err)

	err = f.svc.Update(ctx, created.ID, &entity.Pedido{
		ClienteID:    999,
		InventarioID: 999,
		Cantidad:     5,
		CostoSinIVA:  200,
		Estado:       "Entregado",
	})
	require.NoError(t, err)

	stored, err := f.pedidos.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 999, stored.ClienteID)
	assert.Equal(t, 999, stored.InventarioID)
	assert.InDelta(t, 226.0, stored.CostoTotal, 1e-9)
	assert.Equal(t, "Entregado", stored.Estado)
}

func TestPedidoUpdateKeepsDireccion(t *testing.T) {
	// DireccionID is not on the update allow-list.
	f := newPedidoFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.validPedido())
	require.NoError(t, err)

	updated := f.validPedido()
	updated.DireccionID = 42
	require.NoError(t, f.svc.Update(ctx, created.ID, updated))

	stored, err := f.pedidos.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.direccion.ID, stored.DireccionID)
}

func TestPedidoUpdateMissing(t *testing.T) {
	f := newPedidoFixture(t)

	err := f.svc.Update(context.Background(), 404, f.validPedido())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPedidoDelete(t *testing.T) {
	f := newPedidoFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.validPedido())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), service.ErrNotFound)
}
