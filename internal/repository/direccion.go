package repository

import (
	"context"
	"database/sql"

	"mokkilicores-api/internal/entity"
)

type DireccionRepository struct {
	db *sql.DB
}

func NewDireccionRepository(db *sql.DB) *DireccionRepository {
	return &DireccionRepository{db}
}

func (r *DireccionRepository) List(ctx context.Context) ([]entity.Direccion, error) {
	query := `SELECT id, cliente_id, provincia, canton, distrito, punto_en_waze,
		es_condominio, es_principal, direccion_completa FROM direcciones`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDirecciones(rows)
}

func (r *DireccionRepository) GetByID(ctx context.Context, id int) (*entity.Direccion, error) {
	query := `SELECT id, cliente_id, provincia, canton, distrito, punto_en_waze,
		es_condominio, es_principal, direccion_completa FROM direcciones WHERE id = ?`

	d := &entity.Direccion{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.ClienteID, &d.Provincia,
		&d.Canton, &d.Distrito, &d.PuntoEnWaze, &d.EsCondominio, &d.EsPrincipal,
		&d.DireccionCompleta)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (r *DireccionRepository) ListByClienteID(ctx context.Context, clienteID int) ([]entity.Direccion, error) {
	query := `SELECT id, cliente_id, provincia, canton, distrito, punto_en_waze,
		es_condominio, es_principal, direccion_completa FROM direcciones WHERE cliente_id = ?`

	rows, err := r.db.QueryContext(ctx, query, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDirecciones(rows)
}

func (r *DireccionRepository) Create(ctx context.Context, direccion *entity.Direccion) (*entity.Direccion, error) {
	query := `INSERT INTO direcciones (cliente_id, provincia, canton, distrito, punto_en_waze,
		es_condominio, es_principal, direccion_completa) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, direccion.ClienteID, direccion.Provincia,
		direccion.Canton, direccion.Distrito, direccion.PuntoEnWaze, direccion.EsCondominio,
		direccion.EsPrincipal, direccion.DireccionCompleta)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	direccion.ID = int(id)
	return direccion, nil
}

func (r *DireccionRepository) Update(ctx context.Context, direccion *entity.Direccion) error {
	query := `UPDATE direcciones SET cliente_id = ?, provincia = ?, canton = ?, distrito = ?,
		punto_en_waze = ?, es_condominio = ?, es_principal = ?, direccion_completa = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, direccion.ClienteID, direccion.Provincia,
		direccion.Canton, direccion.Distrito, direccion.PuntoEnWaze, direccion.EsCondominio,
		direccion.EsPrincipal, direccion.DireccionCompleta, direccion.ID)
	return err
}

func (r *DireccionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM direcciones WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func scanDirecciones(rows *sql.Rows) ([]entity.Direccion, error) {
	direcciones := []entity.Direccion{}
	for rows.Next() {
		var d entity.Direccion
		err := rows.Scan(&d.ID, &d.ClienteID, &d.Provincia, &d.Canton, &d.Distrito,
			&d.PuntoEnWaze, &d.EsCondominio, &d.EsPrincipal, &d.DireccionCompleta)
		if err != nil {
			return nil, err
		}
		direcciones = append(direcciones, d)
	}
	return direcciones, rows.Err()
}
