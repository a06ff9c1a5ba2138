package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"mokkilicores-api/internal/api"
	"mokkilicores-api/internal/entity"
	"mokkilicores-api/internal/service"
)

// testAPI runs the full router over in-memory stores.
type testAPI struct {
	e      *echo.Echo
	tokens *service.TokenService

	clientes    *memClientes
	direcciones *memDirecciones
	inventarios *memInventarios
	pedidos     *memPedidos
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	a := &testAPI{
		clientes:    newMemClientes(),
		direcciones: newMemDirecciones(),
		inventarios: newMemInventarios(),
		pedidos:     newMemPedidos(),
	}
	a.tokens = service.NewTokenService("test-secret", "test-issuer", "test-audience", time.Minute)

	handlers := api.Handlers{
		Account:    api.NewAccountHandler(service.NewAccountService(a.clientes, a.tokens, nil, time.Minute)),
		Cliente:    api.NewClienteHandler(service.NewClienteService(a.clientes)),
		Direccion:  api.NewDireccionHandler(service.NewDireccionService(a.direcciones, a.clientes)),
		Inventario: api.NewInventarioHandler(service.NewInventarioService(a.inventarios)),
		Pedido:     api.NewPedidoHandler(service.NewPedidoService(a.pedidos, a.clientes, a.inventarios, a.direcciones, nil)),
	}

	a.e = echo.New()
	api.Register(a.e, a.tokens, handlers)
	return a
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()
	token, err := a.tokens.Generate("admin", service.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (a *testAPI) userToken(t *testing.T, identificacion string) string {
	t.Helper()
	token, err := a.tokens.Generate(identificacion, service.RoleUser)
	require.NoError(t, err)
	return token
}

func (a *testAPI) seedCliente(t *testing.T, identificacion, nombre, apellido string) entity.Cliente {
	t.Helper()
	cliente, err := a.clientes.Create(context.Background(), &entity.Cliente{
		Identificacion: identificacion,
		Nombre:         nombre,
		Apellido:       apellido,
		Provincia:      "San José",
		Canton:         "Central",
		Distrito:       "Carmen",
	})
	require.NoError(t, err)
	return *cliente
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// In-memory stores mirroring the MySQL repositories; missing rows surface as
// sql.ErrNoRows.

type memClientes struct {
	seq  int
	rows map[int]entity.Cliente
}

func newMemClientes() *memClientes { return &memClientes{rows: make(map[int]entity.Cliente)} }

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

func newMemPedidos() *memPedidos { return &memPedidos{rows: make(map[int]entity.Pedido)} }

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
