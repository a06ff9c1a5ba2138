package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateClientes creates the clientes table if it does not exist.
func AutoMigrateClientes(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS clientes (
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
	`
	return execWithRetry(retries, db, query)
}

// AutoMigrateDirecciones creates the direcciones table if it does not exist.
func AutoMigrateDirecciones(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS direcciones (
			id INT AUTO_INCREMENT PRIMARY KEY,
			cliente_id INT NOT NULL,
			provincia VARCHAR(100) NOT NULL,
			canton VARCHAR(100) NOT NULL,
			distrito VARCHAR(100) NOT NULL,
			punto_en_waze VARCHAR(255) NOT NULL,
			es_condominio BOOLEAN NOT NULL,
			es_principal BOOLEAN NOT NULL,
			direccion_completa VARCHAR(500) NOT NULL
		);
	`
	return execWithRetry(retries, db, query)
}

// AutoMigrateInventarios creates the inventarios table if it does not exist.
func AutoMigrateInventarios(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS inventarios (
			id INT AUTO_INCREMENT PRIMARY KEY,
			cantidad_en_existencia INT NOT NULL,
			bodega_id INT NOT NULL,
			fecha_ingreso DATETIME NOT NULL,
			fecha_vencimiento DATETIME NOT NULL,
			tipo_licor VARCHAR(100) NOT NULL
		);
	`
	return execWithRetry(retries, db, query)
}

// AutoMigratePedidos creates the pedidos table if it does not exist.
func AutoMigratePedidos(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS pedidos (
			id INT AUTO_INCREMENT PRIMARY KEY,
			cliente_id INT NOT NULL,
			inventario_id INT NOT NULL,
			direccion_id INT NOT NULL,
			cantidad INT NOT NULL,
			costo_sin_iva DECIMAL(18,2) NOT NULL,
			costo_total DECIMAL(18,2) NOT NULL,
			estado VARCHAR(30) NOT NULL
		);
	`
	return execWithRetry(retries, db, query)
}

func execWithRetry(retries int, db *sql.DB, query string) error {
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}
