package service_test

import (
	"context"
	"database/sql"

	"mokkilicores-api/internal/entity"
)

// In-memory stores standing in for the MySQL repositories. Missing rows surface
// as sql.ErrNoRows, same as the real thing.

type memClientes struct {
	seq  int
	rows map[int]entity.Cliente
}

func newMemClientes() *memClientes {
	return &memClientes{rows: make(map[int]entity.Cliente)}
}

func (m *memClientes) List(ctx context.Context) ([]entity.Cliente, error) {
	out := []entity.Cliente{}
	for _, c := range m.rows {
		out = append(out, c)
	}
	return out, nil
}

func (m *memClientes) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func (m *memClientes) GetByIdentificacion(ctx context.Context, identificacion string) (*entity.Cliente, error) {
	for _, c := range m.rows {
		if c.Identificacion == identificacion {
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memClientes) Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error) {
	m.seq++
	cliente.ID = m.seq
	m.rows[cliente.ID] = *cliente
	return cliente, nil
}

func (m *memClientes) Update(ctx context.Context, cliente *entity.Cliente) error {
	m.rows[cliente.ID] = *cliente
	return nil
}

func (m *memClientes) Delete(ctx context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

type memDirecciones struct {
	seq  int
	rows map[int]entity.Direccion
}

func newMemDirecciones() *memDirecciones {
	return &memDirecciones{rows: make(map[int]entity.Direccion)}
}

func (m *memDirecciones) List(ctx context.Context) ([]entity.Direccion, error) {
	out := []entity.Direccion{}
	for _, d := range m.rows {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDirecciones) GetByID(ctx context.Context, id int) (*entity.Direccion, error) {
	d, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (m *memDirecciones) ListByClienteID(ctx context.Context, clienteID int) ([]entity.Direccion, error) {
	out := []entity.Direccion{}
	for _, d := range m.rows {
		if d.ClienteID == clienteID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDirecciones) Create(ctx context.Context, direccion *entity.Direccion) (*entity.Direccion, error) {
	m.seq++
	direccion.ID = m.seq
	m.rows[direccion.ID] = *direccion
	return direccion, nil
}

func (m *memDirecciones) Update(ctx context.Context, direccion *entity.Direccion) error {
	m.rows[direccion.ID] = *direccion
	return nil
}

func (m *memDirecciones) Delete(ctx context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

type memInventarios struct {
	seq  int
	rows map[int]entity.Inventario
}

func newMemInventarios() *memInventarios {
	return &memInventarios{rows: make(map[int]entity.Inventario)}
}

func (m *memInventarios) List(ctx context.Context) ([]entity.Inventario, error) {
	out := []entity.Inventario{}
	for _, inv := range m.rows {
		out = append(out, inv)
	}
	return out, nil
}

func (m *memInventarios) GetByID(ctx context.Context, id int) (*entity.Inventario, error) {
	inv, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &inv, nil
}

func (m *memInventarios) Create(ctx context.Context, inventario *entity.Inventario) (*entity.Inventario, error) {
	m.seq++
	inventario.ID = m.seq
	m.rows[inventario.ID] = *inventario
	return inventario, nil
}

func (m *memInventarios) Update(ctx context.Context, inventario *entity.Inventario) error {
	m.rows[inventario.ID] = *inventario
	return nil
}

func (m *memInventarios) Delete(ctx context.Context, id int) error {
	delete(m.rows, id)
	return nil
}

type memPedidos struct {
	seq  int
	rows map[int]entity.Pedido
}

func newMemPedidos() *memPedidos {
	return &memPedidos{rows: make(map[int]entity.Pedido)}
}

func (m *memPedidos) List(ctx context.Context) ([]entity.Pedido, error) {
	out := []entity.Pedido{}
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *memPedidos) GetByID(ctx context.Context, id int) (*entity.Pedido, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (m *memPedidos) Create(ctx context.Context, pedido *entity.Pedido) (*entity.Pedido, error) {
	m.seq++
	pedido.ID = m.seq
	m.rows[pedido.ID] = *pedido
	return pedido, nil
}

func (m *memPedidos) Update(ctx context.Context, pedido *entity.Pedido) error {
	m.rows[pedido.ID] = *pedido
	return nil
}

func (m *memPedidos) Delete(ctx context.Context, id int) error {
	delete(m.rows, id)
	return nil
}
