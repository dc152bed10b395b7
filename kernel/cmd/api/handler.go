package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/go-chi/chi/v5"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/unique-id"
)

const capacidadPorDefecto = 128

type Handler struct {
	Log        *slog.Logger
	Config     *Config
	Parametros internal.Parametros
	Resultados *ristretto.Cache[int, *Simulacion]
	ids        *uniqueid.UniqueID
}

// NewHandler arma el servidor de simulaciones. Los resultados se guardan en una caché
// acotada con admisión TinyLFU: con la caché llena, un resultado nuevo puede ser rechazado
// si los que ya están fueron más consultados. CrearSimulacion informa si quedó guardado.
func NewHandler(cfg *Config, logger *slog.Logger) (*Handler, error) {
	capacidad := cfg.CapacidadResultados
	if capacidad <= 0 {
		capacidad = capacidadPorDefecto
	}

	cache, err := ristretto.NewCache(&ristretto.Config[int, *Simulacion]{
		NumCounters:        int64(capacidad) * 10,
		MaxCost:            int64(capacidad),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creando caché de resultados: %w", err)
	}

	return &Handler{
		Log:        logger,
		Config:     cfg,
		Parametros: internal.ParametrosPorDefecto(),
		Resultados: cache,
		ids:        uniqueid.Init(),
	}, nil
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/simulaciones", h.CrearSimulacion)
	r.Get("/simulaciones/{id}", h.ObtenerSimulacion)
	r.Get("/parametros", h.ConsultarParametros)
	return r
}

func (h *Handler) Close() {
	h.Resultados.Close()
}
