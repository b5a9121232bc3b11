package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	ctxUsuarioID ctxKey = "usuarioID"
	ctxIsAdmin   ctxKey = "isAdmin"
)

// MiddlewareAutenticacao exige um Bearer token válido e põe o usuário no contexto
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		claims, err := ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ComUsuario(r.Context(), claims.UsuarioID, claims.IsAdmin)))
	})
}

// ExigirAdmin barra quem não é admin
func ExigirAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Error(w, "Acesso restrito a administradores", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ComUsuario grava o usuário autenticado no contexto
func ComUsuario(ctx context.Context, usuarioID uint, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, ctxUsuarioID, usuarioID)
	return context.WithValue(ctx, ctxIsAdmin, isAdmin)
}

// UsuarioID devolve o usuário autenticado; false quando a rota não passou pelo middleware
func UsuarioID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ctxUsuarioID).(uint)
	return id, ok && id != 0
}

func IsAdmin(ctx context.Context) bool {
	ok, _ := ctx.Value(ctxIsAdmin).(bool)
	return ok
}
