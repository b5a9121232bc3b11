package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrador cria as tabelas de um pacote
type Migrador func(db *gorm.DB) error

// Migrar roda os migradores em ordem e para no primeiro erro
func Migrar(db *gorm.DB, migradores ...Migrador) error {
	for i, m := range migradores {
		if err := m(db); err != nil {
			return fmt.Errorf("migração %d: %w", i+1, err)
		}
	}
	return nil
}
