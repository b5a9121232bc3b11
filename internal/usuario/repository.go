package usuario

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(ctx context.Context, email string) (*Usuario, error)
	BuscarPorID(ctx context.Context, id uint) (*Usuario, error)
	Salvar(ctx context.Context, u *Usuario) error
	Contar(ctx context.Context) (int64, error)
	DefinirAdmin(ctx context.Context, id uint, admin bool) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) BuscarPorEmail(ctx context.Context, email string) (*Usuario, error) {
	var u Usuario
	if err := r.db.WithContext(ctx).Where("email = ?", normalizarEmail(email)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id uint) (*Usuario, error) {
	var u Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Salvar(ctx context.Context, u *Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repositoryImpl) Contar(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Usuario{}).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) DefinirAdmin(ctx context.Context, id uint, admin bool) error {
	res := r.db.WithContext(ctx).Model(&Usuario{}).Where("id = ?", id).Update("is_admin", admin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func normalizarEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
