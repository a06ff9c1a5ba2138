package service

import (
	"context"

	"mokkilicores-api/internal/entity"
)

// Store interfaces are satisfied by the repository package; tests swap in
// in-memory implementations.

type ClienteStore interface {
	List(ctx context.Context) ([]entity.Cliente, error)
	GetByID(ctx context.Context, id int) (*entity.Cliente, error)
	GetByIdentificacion(ctx context.Context, identificacion string) (*entity.Cliente, error)
	Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id int) error
}

type DireccionStore interface {
	List(ctx context.Context) ([]entity.Direccion, error)
	GetByID(ctx context.Context, id int) (*entity.Direccion, error)
	ListByClienteID(ctx context.Context, clienteID int) ([]entity.Direccion, error)
	Create(ctx context.Context, direccion *entity.Direccion) (*entity.Direccion, error)
	Update(ctx context.Context, direccion *entity.Direccion) error
	Delete(ctx context.Context, id int) error
}

type InventarioStore interface {
	List(ctx context.Context) ([]entity.Inventario, error)
	GetByID(ctx context.Context, id int) (*entity.Inventario, error)
	Create(ctx context.Context, inventario *entity.Inventario) (*entity.Inventario, error)
	Update(ctx context.Context, inventario *entity.Inventario) error
	Delete(ctx context.Context, id int) error
}

type PedidoStore interface {
	List(ctx context.Context) ([]entity.Pedido, error)
	GetByID(ctx context.Context, id int) (*entity.Pedido, error)
	Create(ctx context.Context, pedido *entity.Pedido) (*entity.Pedido, error)
	Update(ctx context.Context, pedido *entity.Pedido) error
	Delete(ctx context.Context, id int) error
}
