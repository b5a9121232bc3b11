package plano

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(ctx context.Context, p *Plano) error
	BuscarPorID(ctx context.Context, id uint) (*Plano, error)
	ListarPorUsuario(ctx context.Context, usuarioID uint, ano int) ([]Plano, error)
	Salvar(ctx context.Context, p *Plano) error
	Deletar(ctx context.Context, p *Plano) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Criar(ctx context.Context, p *Plano) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id uint) (*Plano, error) {
	var p Plano
	err := r.db.WithContext(ctx).
		Preload("Meses", func(db *gorm.DB) *gorm.DB { return db.Order("ano_mes") }).
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarPorUsuario lista os planos do usuário; ano 0 traz todos
func (r *repositoryImpl) ListarPorUsuario(ctx context.Context, usuarioID uint, ano int) ([]Plano, error) {
	q := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID)
	if ano != 0 {
		q = q.Where("ano = ?", ano)
	}
	var planos []Plano
	err := q.Order("ano DESC, id DESC").Find(&planos).Error
	return planos, err
}

// Salvar grava o plano e os 12 meses numa transação
func (r *repositoryImpl) Salvar(ctx context.Context, p *Plano) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Meses").Save(p).Error; err != nil {
			return err
		}
		for i := range p.Meses {
			p.Meses[i].PlanoID = p.ID
			if err := tx.Save(&p.Meses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repositoryImpl) Deletar(ctx context.Context, p *Plano) error {
	return r.db.WithContext(ctx).Select("Meses").Delete(p).Error
}
