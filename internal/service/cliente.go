package service

import (
	"context"
	"database/sql"
	"errors"

	"mokkilicores-api/internal/entity"
)

// ClienteService provides cliente CRUD operations.
type ClienteService struct {
	clientes ClienteStore
}

// NewClienteService creates a new instance of ClienteService.
func NewClienteService(clientes ClienteStore) *ClienteService {
	return &ClienteService{clientes: clientes}
}

func (s *ClienteService) List(ctx context.Context) ([]entity.Cliente, error) {
	return s.clientes.List(ctx)
}

func (s *ClienteService) GetByID(ctx context.Context, id int) (*entity.Cliente, error) {
	cliente, err := s.clientes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) Create(ctx context.Context, cliente *entity.Cliente) (*entity.Cliente, error) {
	if cliente.Identificacion == "" || cliente.Nombre == "" || cliente.Apellido == "" {
		return nil, ErrInvalidData
	}

	created, err := s.clientes.Create(ctx, cliente)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating cliente")
		return nil, err
	}

	return created, nil
}

// Update copies the mutable fields onto the stored row. Identificacion is not on
// the allow-list and never changes after creation.
func (s *ClienteService) Update(ctx context.Context, id int, updated *entity.Cliente) error {
	cliente, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cliente.Nombre = updated.Nombre
	cliente.Apellido = updated.Apellido
	cliente.Provincia = updated.Provincia
	cliente.Canton = updated.Canton
	cliente.Distrito = updated.Distrito
	cliente.DineroCompradoTotal = updated.DineroCompradoTotal
	cliente.DineroCompradoUltimoAno = updated.DineroCompradoUltimoAno
	cliente.DineroCompradoUltimos6Meses = updated.DineroCompradoUltimos6Meses

	if err := s.clientes.Update(ctx, cliente); err != nil {
		logger.Error().Err(err).Msgf("Error updating cliente %d", id)
		return err
	}
	return nil
}

func (s *ClienteService) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.clientes.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting cliente %d", id)
		return err
	}
	return nil
}
