package auth

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken guarda só o hash do token; tokens rotacionados compartilham a família
type RefreshToken struct {
	ID         uint   `gorm:"primaryKey"`
	UsuarioID  uint   `gorm:"index"`
	FamiliaID  string `gorm:"size:36;index"`
	Hash       string `gorm:"uniqueIndex"`
	IsAdmin    bool
	ExpiraEm   time.Time `gorm:"index"`
	RevogadoEm *time.Time
	CreatedAt  time.Time
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&RefreshToken{})
}

// Valido indica se o token ainda pode ser trocado
func (t RefreshToken) Valido(agora time.Time) bool {
	return t.RevogadoEm == nil && agora.Before(t.ExpiraEm)
}
