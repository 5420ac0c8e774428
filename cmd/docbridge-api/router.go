// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/docbridge/docbridge/cmd/docbridge-api/handlers"
	"github.com/docbridge/docbridge/cmd/docbridge-api/middleware"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
// No request timeout middleware is mounted: conversion has no deadline of
// its own and a hung backend hangs the request.
func NewRouter(logger *observability.Logger, cfg *config.Config, service handlers.ConversionService) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"docbridge"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ready"}`))
	})

	convertHandler := handlers.NewConvertHandler(logger, service, cfg.Converter.MaxUploadBytes)
	r.Post("/convert", convertHandler.Convert)

	return r
}
