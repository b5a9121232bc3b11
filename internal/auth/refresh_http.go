package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RefreshTTL    = 30 * 24 * time.Hour
	RefreshCookie = "rt"
)

// TokenResponse é a resposta de login e refresh
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func novaResposta(access string) TokenResponse {
	return TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: int(AccessTTL.Seconds())}
}

func gerarBruto() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func hashBruto(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return base64.RawURLEncoding.EncodeToString(h[:])
}

// Em localhost precisa ser Secure=false; em produção use COOKIE_SECURE=true
func cookieSeguro() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}

func gravarCookie(w http.ResponseWriter, raw string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    raw,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   cookieSeguro(),
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
}

func limparCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Secure:   cookieSeguro(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// emitirRefresh cria um refresh token na família informada e grava o cookie
func emitirRefresh(db *gorm.DB, w http.ResponseWriter, usuarioID uint, isAdmin bool, familia string) error {
	raw, err := gerarBruto()
	if err != nil {
		return err
	}
	rt := RefreshToken{
		UsuarioID: usuarioID,
		FamiliaID: familia,
		Hash:      hashBruto(raw),
		IsAdmin:   isAdmin,
		ExpiraEm:  time.Now().Add(RefreshTTL),
	}
	if err := db.Create(&rt).Error; err != nil {
		return err
	}
	gravarCookie(w, raw, rt.ExpiraEm)
	return nil
}

// EmitirTokensNoLogin gera o access token e abre uma nova família de refresh
func EmitirTokensNoLogin(db *gorm.DB, w http.ResponseWriter, usuarioID uint, isAdmin bool) (TokenResponse, error) {
	access, err := GerarAccessToken(usuarioID, isAdmin)
	if err != nil {
		return TokenResponse{}, err
	}
	if err := emitirRefresh(db, w, usuarioID, isAdmin, uuid.NewString()); err != nil {
		return TokenResponse{}, err
	}
	return novaResposta(access), nil
}

// RefreshHandler troca o refresh token por um novo par. Um token já revogado
// sendo reapresentado derruba a família inteira.
func RefreshHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := config.GetLogger()

		c, err := r.Cookie(RefreshCookie)
		if err != nil || c.Value == "" {
			http.Error(w, "Refresh ausente", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		var atual RefreshToken
		if err := db.WithContext(ctx).Where("hash = ?", hashBruto(c.Value)).First(&atual).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				config.LogError(logger, "auth", "RefreshHandler", "buscar refresh", nil, err)
			}
			limparCookie(w)
			http.Error(w, "Refresh inválido", http.StatusUnauthorized)
			return
		}

		agora := time.Now()
		if atual.RevogadoEm != nil {
			if err := revogarFamilia(db.WithContext(ctx), atual.FamiliaID, agora); err != nil {
				config.LogError(logger, "auth", "RefreshHandler", "revogar família", atual.FamiliaID, err)
			}
			limparCookie(w)
			http.Error(w, "Refresh reutilizado", http.StatusUnauthorized)
			return
		}
		if !atual.Valido(agora) {
			limparCookie(w)
			http.Error(w, "Refresh expirado", http.StatusUnauthorized)
			return
		}

		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&atual).Update("revogado_em", &agora).Error; err != nil {
				return err
			}
			return emitirRefresh(tx, w, atual.UsuarioID, atual.IsAdmin, atual.FamiliaID)
		})
		if err != nil {
			config.LogError(logger, "auth", "RefreshHandler", "rotacionar refresh", atual.UsuarioID, err)
			limparCookie(w)
			http.Error(w, "Erro ao renovar sessão", http.StatusInternalServerError)
			return
		}

		access, err := GerarAccessToken(atual.UsuarioID, atual.IsAdmin)
		if err != nil {
			config.LogError(logger, "auth", "RefreshHandler", "gerar access", atual.UsuarioID, err)
			http.Error(w, "Erro ao renovar sessão", http.StatusInternalServerError)
			return
		}
		utils.ResponderJSON(w, http.StatusOK, novaResposta(access))
	}
}

// LogoutHandler revoga a família do refresh atual e limpa o cookie
func LogoutHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(RefreshCookie); err == nil && c.Value != "" {
			var atual RefreshToken
			if err := db.WithContext(r.Context()).Where("hash = ?", hashBruto(c.Value)).First(&atual).Error; err == nil {
				if err := revogarFamilia(db.WithContext(r.Context()), atual.FamiliaID, time.Now()); err != nil {
					config.LogError(config.GetLogger(), "auth", "LogoutHandler", "revogar família", atual.FamiliaID, err)
				}
			}
		}
		limparCookie(w)
		w.WriteHeader(http.StatusNoContent)
	}
}

func revogarFamilia(db *gorm.DB, familia string, quando time.Time) error {
	return db.Model(&RefreshToken{}).
		Where("familia_id = ? AND revogado_em IS NULL", familia).
		Update("revogado_em", &quando).Error
}
