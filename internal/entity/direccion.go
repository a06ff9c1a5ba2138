package entity

type Direccion struct {
	ID                int    `json:"id"`
	ClienteID         int    `json:"clienteId"`
	Provincia         string `json:"provincia"`
	Canton            string `json:"canton"`
	Distrito          string `json:"distrito"`
	PuntoEnWaze       string `json:"puntoEnWaze"`
	EsCondominio      bool   `json:"esCondominio"`
	EsPrincipal       bool   `json:"esPrincipal"`
	DireccionCompleta string `json:"direccionCompleta"`
}
