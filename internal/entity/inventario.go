package entity

import "time"

type Inventario struct {
	ID                   int       `json:"id"`
	CantidadEnExistencia int       `json:"cantidadEnExistencia"`
	BodegaID             int       `json:"bodegaId"`
	FechaIngreso         time.Time `json:"fechaIngreso"`
	FechaVencimiento     time.Time `json:"fechaVencimiento"`
	TipoLicor            string    `json:"tipoLicor"`
}
