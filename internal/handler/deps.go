package handler

import (
	"context"

	"medconnect/internal/app/call"
	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/storage"
	"medconnect/internal/app/translate"
	"medconnect/internal/configs"
	"medconnect/internal/pkg/pow"
)

// Translator detects and translates clinical notes.
type Translator interface {
	DetectAndTranslate(ctx context.Context, text, target string) (translate.Result, error)
}

// Prescriber drafts prescriptions from symptoms.
type Prescriber interface {
	Generate(ctx context.Context, symptoms string) (string, error)
}

// AppDeps bundles everything the handlers need.
type AppDeps struct {
	Config         *configs.AppConfig
	DB             dbc.Querier
	StorageService storage.StorageService
	Relay          *call.Relay
	Translator     Translator
	Prescriber     Prescriber
	Pow            *pow.Manager
}
