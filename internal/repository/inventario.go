package repository

import (
	"context"
	"database/sql"

	"mokkilicores-api/internal/entity"
)

type InventarioRepository struct {
	db *sql.DB
}

func NewInventarioRepository(db *sql.DB) *InventarioRepository {
	return &InventarioRepository{db}
}

func (r *InventarioRepository) List(ctx context.Context) ([]entity.Inventario, error) {
	query := `SELECT id, cantidad_en_existencia, bodega_id, fecha_ingreso, fecha_vencimiento,
		tipo_licor FROM inventarios`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventarios := []entity.Inventario{}
	for rows.Next() {
		var inv entity.Inventario
		err := rows.Scan(&inv.ID, &inv.CantidadEnExistencia, &inv.BodegaID, &inv.FechaIngreso,
			&inv.FechaVencimiento, &inv.TipoLicor)
		if err != nil {
			return nil, err
		}
		inventarios = append(inventarios, inv)
	}

	return inventarios, rows.Err()
}

func (r *InventarioRepository) GetByID(ctx context.Context, id int) (*entity.Inventario, error) {
	query := `SELECT id, cantidad_en_existencia, bodega_id, fecha_ingreso, fecha_vencimiento,
		tipo_licor FROM inventarios WHERE id = ?`

	inv := &entity.Inventario{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.CantidadEnExistencia,
		&inv.BodegaID, &inv.FechaIngreso, &inv.FechaVencimiento, &inv.TipoLicor)
	if err != nil {
		return nil, err
	}

	return inv, nil
}

func (r *InventarioRepository) Create(ctx context.Context, inventario *entity.Inventario) (*entity.Inventario, error) {
	query := `INSERT INTO inventarios (cantidad_en_existencia, bodega_id, fecha_ingreso,
		fecha_vencimiento, tipo_licor) VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, inventario.CantidadEnExistencia, inventario.BodegaID,
		inventario.FechaIngreso, inventario.FechaVencimiento, inventario.TipoLicor)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	inventario.ID = int(id)
	return inventario, nil
}

func (r *InventarioRepository) Update(ctx context.Context, inventario *entity.Inventario) error {
	query := `UPDATE inventarios SET cantidad_en_existencia = ?, bodega_id = ?, fecha_ingreso = ?,
		fecha_vencimiento = ?, tipo_licor = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, inventario.CantidadEnExistencia, inventario.BodegaID,
		inventario.FechaIngreso, inventario.FechaVencimiento, inventario.TipoLicor, inventario.ID)
	return err
}

func (r *InventarioRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM inventarios WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
