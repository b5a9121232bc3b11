package usuario

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Nome    string `json:"nome"`
	Email   string `json:"email" gorm:"uniqueIndex;not null"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}

// Migrate cria a tabela de usuários
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
