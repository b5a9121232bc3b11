package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/auth"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/database"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/fonte"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/importacao"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/plano"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/simulacao"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/usuario"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	logger := config.GetLogger()
	cfg := config.Carregar()
	ctx := context.Background()

	db, err := database.Conectar(ctx, database.ConfigDoAmbiente())
	if err != nil {
		config.LogError(logger, "main", "main", "conectar banco", nil, err)
		os.Exit(1)
	}

	if err := database.Migrar(db,
		usuario.Migrate,
		auth.Migrate,
		importacao.Migrate,
		plano.Migrate,
	); err != nil {
		config.LogError(logger, "main", "main", "migrar", nil, err)
		os.Exit(1)
	}

	// Fontes da planilha de notas; o cache é opcional
	carregador := &fonte.Carregador{Fontes: fonte.Montar(cfg)}
	if cfg.RedisAddr != "" {
		rdb, err := fonte.ConectarRedis(ctx, cfg.RedisAddr)
		if err != nil {
			config.LogError(logger, "main", "main", "conectar redis, seguindo sem cache", cfg.RedisAddr, err)
		} else {
			carregador.Cache = fonte.NewCacheRedis(rdb, cfg.CacheTTL)
		}
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db)
	importacaoRepo := importacao.NewRepository(db)
	importacaoHandler := importacao.NewHandler(importacaoRepo, carregador, cfg.AnoSimulacao, cfg.MargemReferencia)
	planoHandler := plano.NewHandler(plano.NewRepository(db), importacaoRepo, cfg.AnoSimulacao, cfg.MargemReferencia)
	simulacaoHandler := simulacao.NewHandler()

	r := mux.NewRouter()

	/* ===== Rotas públicas ===== */
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHandler(db)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHandler(db)).Methods("POST")
	r.HandleFunc("/.well-known/jwks.json", auth.JWKSHandler).Methods("GET")
	simulacaoHandler.RegistrarRotas(r)

	/* ===== Rotas autenticadas ===== */
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	api.Handle("/usuarios/{id}/admin", auth.ExigirAdmin(http.HandlerFunc(usuarioHandler.DefinirAdmin))).Methods("PUT")
	api.Handle("/usuarios/{id}/senha-temporaria", auth.ExigirAdmin(http.HandlerFunc(usuarioHandler.ResetarSenha))).Methods("POST")

	api.HandleFunc("/realizado/upload", importacaoHandler.Upload).Methods("POST")
	api.HandleFunc("/realizado/carregar", importacaoHandler.Carregar).Methods("POST")
	api.HandleFunc("/realizado", importacaoHandler.Obter).Methods("GET")

	planoHandler.RegistrarRotas(api)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Porta,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.WithField("porta", cfg.Porta).Info("servidor iniciado")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		config.LogError(logger, "main", "main", "servidor", nil, err)
		os.Exit(1)
	}
}
