package service

import (
	"context"
	"database/sql"
	"errors"

	"mokkilicores-api/internal/entity"
)

// InventarioService provides inventario CRUD operations. Quantities are not
// constrained to be non-negative and are never decremented by order placement.
type InventarioService struct {
	inventarios InventarioStore
}

// NewInventarioService creates a new instance of InventarioService.
func NewInventarioService(inventarios InventarioStore) *InventarioService {
	return &InventarioService{inventarios: inventarios}
}

func (s *InventarioService) List(ctx context.Context) ([]entity.Inventario, error) {
	return s.inventarios.List(ctx)
}

func (s *InventarioService) GetByID(ctx context.Context, id int) (*entity.Inventario, error) {
	inventario, err := s.inventarios.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inventario, nil
}

func (s *InventarioService) Create(ctx context.Context, inventario *entity.Inventario) (*entity.Inventario, error) {
	if inventario.TipoLicor == "" {
		return nil, ErrInvalidData
	}

	created, err := s.inventarios.Create(ctx, inventario)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating inventario")
		return nil, err
	}

	return created, nil
}

func (s *InventarioService) Update(ctx context.Context, id int, updated *entity.Inventario) error {
	inventario, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	inventario.CantidadEnExistencia = updated.CantidadEnExistencia
	inventario.BodegaID = updated.BodegaID
	inventario.FechaIngreso = updated.FechaIngreso
	inventario.FechaVencimiento = updated.FechaVencimiento
	inventario.TipoLicor = updated.TipoLicor

	if err := s.inventarios.Update(ctx, inventario); err != nil {
		logger.Error().Err(err).Msgf("Error updating inventario %d", id)
		return err
	}
	return nil
}

func (s *InventarioService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.inventarios.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting inventario %d", id)
		return err
	}
	return nil
}
