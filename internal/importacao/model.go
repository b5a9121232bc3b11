package importacao

import (
	"sort"
	"time"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/realizado"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Importacao é um retrato do realizado de um ano, gerado a partir de uma planilha de notas
type Importacao struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID  uint           `gorm:"not null;index" json:"usuarioId"`
	Ano        int            `gorm:"not null;index" json:"ano"`
	Fonte      string         `gorm:"size:500" json:"fonte"`
	MesVigente int            `gorm:"not null;default:0" json:"mesVigente"`
	QtdNotas   int            `gorm:"not null;default:0" json:"qtdNotas"`
	Meses      []RealizadoMes `gorm:"foreignKey:ImportacaoID;constraint:OnDelete:CASCADE" json:"meses"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// RealizadoMes é o FAT/COMPRAS/LAT consolidado de um mês da importação
type RealizadoMes struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	ImportacaoID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	AnoMes       int       `gorm:"not null" json:"anoMes"`
	Faturamento  float64   `gorm:"not null;default:0" json:"faturamento"`
	Compras      float64   `gorm:"not null;default:0" json:"compras"`
	LAT          float64   `gorm:"not null;default:0" json:"lat"`
}

func (i *Importacao) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// PorMes devolve os meses no formato do agregador
func (i Importacao) PorMes() map[int]realizado.Mes {
	out := make(map[int]realizado.Mes, len(i.Meses))
	for _, m := range i.Meses {
		out[m.AnoMes] = realizado.Mes{Faturamento: m.Faturamento, Compras: m.Compras, LAT: m.LAT}
	}
	return out
}

func linhasDeMeses(meses map[int]realizado.Mes) []RealizadoMes {
	chaves := make([]int, 0, len(meses))
	for k := range meses {
		chaves = append(chaves, k)
	}
	sort.Ints(chaves)

	out := make([]RealizadoMes, 0, len(chaves))
	for _, k := range chaves {
		m := meses[k]
		out = append(out, RealizadoMes{AnoMes: k, Faturamento: m.Faturamento, Compras: m.Compras, LAT: m.LAT})
	}
	return out
}

// Migrate cria as tabelas da importação
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Importacao{}, &RealizadoMes{})
}
