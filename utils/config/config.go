package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// IniciarConfiguracion decodifica el archivo JSON indicado sobre un valor de tipo T.
func IniciarConfiguracion[T any](filePath string) (*T, error) {
	configFile, err := os.Open(filePath)
	if err != nil {
		slog.Error("Error al abrir el archivo de configuración",
			slog.String("filePath", filePath),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("abriendo configuración %s: %w", filePath, err)
	}
	defer func() {
		_ = configFile.Close()
	}()

	var config T
	jsonParser := json.NewDecoder(configFile)
	if err = jsonParser.Decode(&config); err != nil {
		slog.Error("Error al decodificar el archivo de configuración",
			slog.String("filePath", filePath),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("decodificando configuración %s: %w", filePath, err)
	}

	return &config, nil
}
