package repository

import (
	"context"
	"database/sql"

	"mokkilicores-api/internal/entity"
)

type PedidoRepository struct {
	db *sql.DB
}

func NewPedidoRepository(db *sql.DB) *PedidoRepository {
	return &PedidoRepository{db}
}

func (r *PedidoRepository) List(ctx context.Context) ([]entity.Pedido, error) {
	query := `SELECT id, cliente_id, inventario_id, direccion_id, cantidad, costo_sin_iva,
		costo_total, estado FROM pedidos`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pedidos := []entity.Pedido{}
	for rows.Next() {
		var p entity.Pedido
		err := rows.Scan(&p.ID, &p.ClienteID, &p.InventarioID, &p.DireccionID, &p.Cantidad,
			&p.CostoSinIVA, &p.CostoTotal, &p.Estado)
		if err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}

	return pedidos, rows.Err()
}

func (r *PedidoRepository) GetByID(ctx context.Context, id int) (*entity.Pedido, error) {
	query := `SELECT id, cliente_id, inventario_id, direccion_id, cantidad, costo_sin_iva,
		costo_total, estado FROM pedidos WHERE id = ?`

	p := &entity.Pedido{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.ClienteID, &p.InventarioID,
		&p.DireccionID, &p.Cantidad, &p.CostoSinIVA, &p.CostoTotal, &p.Estado)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PedidoRepository) Create(ctx context.Context, pedido *entity.Pedido) (*entity.Pedido, error) {
	query := `INSERT INTO pedidos (cliente_id, inventario_id, direccion_id, cantidad,
		costo_sin_iva, costo_total, estado) VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, pedido.ClienteID, pedido.InventarioID,
		pedido.DireccionID, pedido.Cantidad, pedido.CostoSinIVA, pedido.CostoTotal,
		pedido.Estado)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	pedido.ID = int(id)
	return pedido, nil
}

func (r *PedidoRepository) Update(ctx context.Context, pedido *entity.Pedido) error {
	query := `UPDATE pedidos SET cliente_id = ?, inventario_id = ?, direccion_id = ?,
		cantidad = ?, costo_sin_iva = ?, costo_total = ?, estado = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, pedido.ClienteID, pedido.InventarioID,
		pedido.DireccionID, pedido.Cantidad, pedido.CostoSinIVA, pedido.CostoTotal,
		pedido.Estado, pedido.ID)
	return err
}

func (r *PedidoRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM pedidos WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
