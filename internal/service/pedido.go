package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"mokkilicores-api/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// IVARate is the fixed sales-tax multiplier applied to every pedido.
const IVARate = 1.13

// PedidoService provides pedido CRUD operations and publishes order events.
type PedidoService struct {
	pedidos     PedidoStore
	clientes    ClienteStore
	inventarios InventarioStore
	direcciones DireccionStore
	kafkaWriter *kafka.Writer
}

// NewPedidoService creates a new instance of PedidoService. kafkaWriter may be
// nil, in which case no events are published.
func NewPedidoService(pedidos PedidoStore, clientes ClienteStore, inventarios InventarioStore, direcciones DireccionStore, kafkaWriter *kafka.Writer) *PedidoService {
	return &PedidoService{
		pedidos:     pedidos,
		clientes:    clientes,
		inventarios: inventarios,
		direcciones: direcciones,
		kafkaWriter: kafkaWriter,
	}
}

func (s *PedidoService) List(ctx context.Context) ([]entity.Pedido, error) {
	return s.pedidos.List(ctx)
}

func (s *PedidoService) GetByID(ctx context.Context, id int) (*entity.Pedido, error) {
	pedido, err := s.pedidos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Warn().Msgf("Pedido with id %d not found", id)
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pedido, nil
}

// Create recomputes CostoTotal server-side and verifies the three references plus
// direccion ownership before persisting anything.
func (s *PedidoService) Create(ctx context.Context, pedido *entity.Pedido) (*entity.Pedido, error) {
	if payload, err := json.Marshal(pedido); err == nil {
		logger.Debug().RawJSON("pedido", payload).Msg("Datos recibidos")
	}

	pedido.CostoTotal = pedido.CostoSinIVA * IVARate

	cliente, err := s.lookupCliente(ctx, pedido.ClienteID)
	if err != nil {
		return nil, err
	}
	inventario, err := s.lookupInventario(ctx, pedido.InventarioID)
	if err != nil {
		return nil, err
	}
	direccion, err := s.lookupDireccion(ctx, pedido.DireccionID)
	if err != nil {
		return nil, err
	}

	if cliente == nil || inventario == nil || direccion == nil || direccion.ClienteID != pedido.ClienteID {
		logger.Warn().Msgf("Pedido rejected: cliente=%d inventario=%d direccion=%d not found or not valid",
			pedido.ClienteID, pedido.InventarioID, pedido.DireccionID)
		return nil, ErrInvalidData
	}

	created, err := s.pedidos.Create(ctx, pedido)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating pedido")
		return nil, err
	}

	s.publishPedidoEvent(ctx, created, "created")
	return created, nil
}

// Update copies the mutable fields and recomputes CostoTotal. Unlike Create it
// does not revalidate the cliente/inventario references, and DireccionID is not
// on the allow-list. Reproduced as observed in the system this replaces.
func (s *PedidoService) Update(ctx context.Context, id int, updated *entity.Pedido) error {
	if payload, err := json.Marshal(updated); err == nil {
		logger.Debug().RawJSON("pedido", payload).Msg("Datos recibidos para actualización")
	}

	pedido, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	pedido.ClienteID = updated.ClienteID
	pedido.InventarioID = updated.InventarioID
	pedido.Cantidad = updated.Cantidad
	pedido.CostoSinIVA = updated.CostoSinIVA
	pedido.CostoTotal = updated.CostoSinIVA * IVARate
	pedido.Estado = updated.Estado

	if err := s.pedidos.Update(ctx, pedido); err != nil {
		logger.Error().Err(err).Msgf("Error updating pedido %d", id)
		return err
	}

	s.publishPedidoEvent(ctx, pedido, "updated")
	return nil
}

func (s *PedidoService) Delete(ctx context.Context, id int) error {
	pedido, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.pedidos.Delete(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting pedido %d", id)
		return err
	}

	s.publishPedidoEvent(ctx, pedido, "deleted")
	return nil
}

func (s *PedidoService) lookupCliente(ctx context.Context, id int) (*entity.Cliente, error) {
	cliente, err := s.clientes.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return cliente, err
}

func (s *PedidoService) lookupInventario(ctx context.Context, id int) (*entity.Inventario, error) {
	inventario, err := s.inventarios.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return inventario, err
}

func (s *PedidoService) lookupDireccion(ctx context.Context, id int) (*entity.Direccion, error) {
	direccion, err := s.direcciones.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return direccion, err
}

// publishPedidoEvent emits the pedido to Kafka. Best effort: publish failures are
// logged and never surfaced to the HTTP caller.
func (s *PedidoService) publishPedidoEvent(ctx context.Context, pedido *entity.Pedido, key string) {
	if s.kafkaWriter == nil {
		return
	}

	pedidoJSON, err := json.Marshal(pedido)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling pedido event")
		return
	}

	// pedido-created-1 or pedido-updated-1
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("pedido-%s-%d", key, pedido.ID)),
		Value: pedidoJSON,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing pedido %s event", key)
	}
}
