package entity

type Cliente struct {
	ID                          int     `json:"id"`
	Identificacion              string  `json:"identificacion"`
	Nombre                      string  `json:"nombre"`
	Apellido                    string  `json:"apellido"`
	Provincia                   string  `json:"provincia"`
	Canton                      string  `json:"canton"`
	Distrito                    string  `json:"distrito"`
	DineroCompradoTotal         float64 `json:"dineroCompradoTotal"`
	DineroCompradoUltimoAno     float64 `json:"dineroCompradoUltimoAno"`
	DineroCompradoUltimos6Meses float64 `json:"dineroCompradoUltimos6Meses"`
}

/*
Mysql Table

CREATE TABLE clientes (
	id INT AUTO_INCREMENT PRIMARY KEY,
	identificacion VARCHAR(50) NOT NULL,
	nombre VARCHAR(100) NOT NULL,
	apellido VARCHAR(100) NOT NULL,
	provincia VARCHAR(100) NOT NULL,
	canton VARCHAR(100) NOT NULL,
	distrito VARCHAR(100) NOT NULL,
	dinero_comprado_total DECIMAL(18,2) NOT NULL,
	dinero_comprado_ultimo_ano DECIMAL(18,2) NOT NULL,
	dinero_comprado_ultimos_6_meses DECIMAL(18,2) NOT NULL
);
*/
