package plano

import (
	"time"

	"gorm.io/gorm"
)

// Plano é a simulação anual de um usuário: um LAT por mês, editável só nos meses abertos.
// No mês vigente o LAT do plano é o que se espera somar ao realizado até o fim do mês.
type Plano struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UsuarioID        uint           `gorm:"not null;index" json:"usuarioId"`
	Ano              int            `gorm:"not null;index" json:"ano"`
	MesVigente       int            `gorm:"not null;default:0" json:"mesVigente"`
	SimularVigente   bool           `gorm:"not null;default:false" json:"simularVigente"`
	MargemReferencia int            `gorm:"not null;default:20" json:"margemReferencia"`
	Meses            []PlanoMes     `gorm:"foreignKey:PlanoID;constraint:OnDelete:CASCADE" json:"meses"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// PlanoMes é uma linha editável do plano
type PlanoMes struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlanoID   uint      `gorm:"not null;index" json:"planoId"`
	AnoMes    int       `gorm:"not null" json:"anoMes"`
	LAT       float64   `gorm:"not null;default:0" json:"lat"`
	Obs       string    `gorm:"size:255" json:"obs"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria as tabelas do plano
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Plano{}, &PlanoMes{})
}
