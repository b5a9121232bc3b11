package importacao

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Salvar(ctx context.Context, imp *Importacao) error
	UltimaDoAno(ctx context.Context, usuarioID uint, ano int) (*Importacao, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Salvar grava a importação e os meses na mesma transação
func (r *repositoryImpl) Salvar(ctx context.Context, imp *Importacao) error {
	return r.db.WithContext(ctx).Create(imp).Error
}

// UltimaDoAno devolve a importação mais recente do usuário para o ano
func (r *repositoryImpl) UltimaDoAno(ctx context.Context, usuarioID uint, ano int) (*Importacao, error) {
	var imp Importacao
	err := r.db.WithContext(ctx).
		Preload("Meses", func(db *gorm.DB) *gorm.DB { return db.Order("ano_mes") }).
		Where("usuario_id = ? AND ano = ?", usuarioID, ano).
		Order("created_at DESC").
		First(&imp).Error
	if err != nil {
		return nil, err
	}
	return &imp, nil
}
