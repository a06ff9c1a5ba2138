package repository

import (
	"context"
	"database/sql"

	"mokkilicores-api/internal/entity"
)

type ClienteRepository struct {
	db *sql.DB
}

func NewClienteRepository(db *sql.DB) *ClienteRepository {
	return &ClienteRepository{db}
}

func (r *ClienteRepository) List(ctx context.Context) ([]entity.Cliente, error) {
	query := `SELECT id, identificacion, nombre, apellido, provincia, canton, distrito,
		dinero_comprado_total, dinero_comprado_ultimo_ano, dinero_comprado_ultimos_6_meses
		FROM clientes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clientes := []entity.Cliente{}
	for rows.Next() {
		var c entity.Cliente
		err := rows.Scan(&c.ID, &c.Identificacion, &c.Nombre, &c.Apellido, &c.Provincia,
			&c.Canton, &c.Distrito, &c.DineroCompradoTotal, &c.DineroCompradoUltimoAno,
			&c.DineroCompradoUltimos6Meses)
		if err != nil {
			return nil, err
		}
		clientes = append(clientes, c)
	}

	return clientes, rows.Err()
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	query := `SELECT id, identificacion, nombre, apellido, provincia, canton, distrito,
		dinero_comprado_total, dinero_comprado_ultimo_ano, dinero_comprado_ultimos_6_meses
		FROM clientes WHERE id = ?`

	c := &entity.Cliente{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Identificacion, &c.Nombre,
		&c.Apellido, &c.Provincia, &c.Canton, &c.Distrito, &c.DineroCompradoTotal,
		&c.DineroCompradoUltimoAno, &c.DineroCompradoUltimos6Meses)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *ClienteRepository) GetByIdentificacion(ctx context.Context, identificacion string) (*entity.Cliente, error) {
	query := `SELECT id, identificacion, nombre, apellido, provincia, canton, distrito,
		dinero_comprado_total, dinero_comprado_ultimo_ano, dinero_comprado_ultimos_6_meses
		FROM clientes WHERE identificacion = ? LIMIT 1`

	c := &entity.Cliente{}
	err := r.db.QueryRowContext(ctx, query, identificacion).Scan(&c.ID, &c.Identificacion,
		&c.Nombre, &c.Apellido, &c.Provincia, &c.Canton, &c.Distrito, &c.DineroCompradoTotal,
		&c.DineroCompradoUltimoAno, &c.DineroCompradoUltimos6Meses)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error) {
	query := `INSERT INTO clientes (identificacion, nombre, apellido, provincia, canton, distrito,
		dinero_comprado_total, dinero_comprado_ultimo_ano, dinero_comprado_ultimos_6_meses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, cliente.Identificacion, cliente.Nombre,
		cliente.Apellido, cliente.Provincia, cliente.Canton, cliente.Distrito,
		cliente.DineroCompradoTotal, cliente.DineroCompradoUltimoAno,
		cliente.DineroCompradoUltimos6Meses)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	cliente.ID = int(id)
	return cliente, nil
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *entity.Cliente) error {
	query := `UPDATE clientes SET identificacion = ?, nombre = ?, apellido = ?, provincia = ?,
		canton = ?, distrito = ?, dinero_comprado_total = ?, dinero_comprado_ultimo_ano = ?,
		dinero_comprado_ultimos_6_meses = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, cliente.Identificacion, cliente.Nombre,
		cliente.Apellido, cliente.Provincia, cliente.Canton, cliente.Distrito,
		cliente.DineroCompradoTotal, cliente.DineroCompradoUltimoAno,
		cliente.DineroCompradoUltimos6Meses, cliente.ID)
	return err
}

func (r *ClienteRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM clientes WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
