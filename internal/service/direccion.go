package service

import (
	"context"
	"database/sql"
	"errors"

	"mokkilicores-api/internal/entity"
)

// DireccionService provides direccion CRUD operations plus the per-cliente listings.
type DireccionService struct {
	direcciones DireccionStore
	clientes    ClienteStore
}

// NewDireccionService creates a new instance of DireccionService.
func NewDireccionService(direcciones DireccionStore, clientes ClienteStore) *DireccionService {
	return &DireccionService{direcciones: direcciones, clientes: clientes}
}

func (s *DireccionService) List(ctx context.Context) ([]entity.Direccion, error) {
	return s.direcciones.List(ctx)
}

func (s *DireccionService) GetByID(ctx context.Context, id int) (*entity.Direccion, error) {
	direccion, err := s.direcciones.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return direccion, nil
}

// ListByUsuario resolves the cliente by identificacion first; an unknown
// identificacion is a not-found, unlike ListByClienteID.
func (s *DireccionService) ListByUsuario(ctx context.Context, identificacion string) ([]entity.Direccion, error) {
	cliente, err := s.clientes.GetByIdentificacion(ctx, identificacion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.direcciones.ListByClienteID(ctx, cliente.ID)
}

// ListByClienteID returns the direcciones for a raw cliente key. The key is not
// checked against the clientes table; an unknown key yields an empty list.
func (s *DireccionService) ListByClienteID(ctx context.Context, clienteID int) ([]entity.Direccion, error) {
	return s.direcciones.ListByClienteID(ctx, clienteID)
}

func (s *DireccionService) Create(ctx context.Context, direccion *entity.Direccion) (*entity.Direccion, error) {
	// The cliente reference is expected to exist but deliberately not verified,
	// matching the system under reproduction.
	if direccion.ClienteID <= 0 {
		return nil, ErrInvalidData
	}

	created, err := s.direcciones.Create(ctx, direccion)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating direccion")
		return nil, err
	}

	return created, nil
}

// Update copies the mutable fields onto the stored row. DireccionCompleta is not
// on the allow-list and can only be set at creation.
func (s *DireccionService) Update(ctx context.Context, id int, updated *entity.Direccion) error {
	direccion, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	direccion.ClienteID = updated.ClienteID
	direccion.Provincia = updated.Provincia
	direccion.Canton = updated.Canton
	direccion.Distrito = updated.Distrito
	direccion.PuntoEnWaze = updated.PuntoEnWaze
	direccion.EsCondominio = updated.EsCondominio
	direccion.EsPrincipal = updated.EsPrincipal

	if err := s.direcciones.Update(ctx, direccion); err != nil {
		logger.Error().Err(err).Msgf("Error updating direccion %d", id)
		return err
	}
	return nil
}

func (s *DireccionService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.direcciones.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting direccion %d", id)
		return err
	}
	return nil
}
