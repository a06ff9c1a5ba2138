package entity

type Pedido struct {
	ID           int     `json:"id"`
	ClienteID    int     `json:"clienteId"`
	InventarioID int     `json:"inventarioId"`
	DireccionID  int     `json:"direccionId"`
	Cantidad     int     `json:"cantidad"`
	CostoSinIVA  float64 `json:"costoSinIVA"`
	CostoTotal   float64 `json:"costoTotal"`
	Estado       string  `json:"estado"` // e.g., "Pendiente", "Entregado", "Cancelado"
}
