// seed_demo crea un perfil de demostración en el almacenamiento configurado:
// negocio registrado, sesión iniciada y sector elegido.
//
// Uso: go run ./cmd/seed_demo [sector]
// Por defecto usa el sector retail. Imprime el token de perfil para enviarlo en
// X-Profile-Token (o como cookie sf_profile).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sectorflow-api/internal/application/auth"
	"github.com/jhoicas/sectorflow-api/internal/application/dto"
	"github.com/jhoicas/sectorflow-api/internal/application/sector"
	"github.com/jhoicas/sectorflow-api/internal/infrastructure/storage"
	"github.com/jhoicas/sectorflow-api/pkg/config"
	"github.com/jhoicas/sectorflow-api/pkg/jwt"
	"github.com/jhoicas/sectorflow-api/pkg/logger"
)

func main() {
	sectorID := "retail"
	if len(os.Args) > 1 {
		sectorID = os.Args[1]
	}
	if err := run(sectorID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run siembra el perfil; los defer se ejecutan también en los caminos de error.
func run(sectorID string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET es obligatorio: el token debe ser válido para la API")
	}
	if cfg.Storage.Driver == config.StorageMemory {
		return fmt.Errorf("STORAGE_DRIVER=memory no persiste entre procesos; use sqlite o postgres")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer backend.Close()

	sessions := auth.NewSessionManager(backend.Profiles, log, auth.Config{})
	sectors := sector.NewManager(backend.Profiles, log)
	profileID := uuid.NewString()

	reg := dto.RegisterRequest{
		BusinessName:    "Demo Business",
		OwnerName:       "Demo Owner",
		Email:           "demo@sectorflow.local",
		Password:        "demo1234",
		ConfirmPassword: "demo1234",
		Phone:           "+250700000000",
		Address:         "Kigali",
	}
	if _, err := sessions.Register(ctx, profileID, reg); err != nil {
		return fmt.Errorf("registrar negocio: %w", err)
	}
	if _, err := sessions.Login(ctx, profileID, dto.LoginRequest{Email: reg.Email, Password: reg.Password}); err != nil {
		return fmt.Errorf("iniciar sesión: %w", err)
	}
	if _, err := sectors.Set(ctx, profileID, sectorID); err != nil {
		return fmt.Errorf("seleccionar sector: %w", err)
	}

	token, err := jwt.GenerateProfile(cfg.JWT.Secret, profileID, cfg.JWT.Issuer, time.Duration(cfg.JWT.ProfileTTLDays)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("firmar token: %w", err)
	}
	fmt.Printf("profile_id=%s\nsector=%s\ntoken=%s\n", profileID, sectorID, token)
	return nil
}
