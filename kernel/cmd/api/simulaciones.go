package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/kernel/internal/planificadores"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// Una carga con 500 procesos de 100 claves de diez dígitos ocupa bastante menos.
const tamanioMaximoCarga = 1 << 20

// CrearSimulacion recibe en el cuerpo una carga de trabajo en el formato del archivo de
// búsquedas, la ejecuta completa y responde con el resultado y la traza de swaps.
func (h *Handler) CrearSimulacion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cuerpo := http.MaxBytesReader(w, r.Body, tamanioMaximoCarga)

	var traza bytes.Buffer
	resultado, err := planificadores.Simular(h.Log, h.Parametros, cuerpo, &traza)
	if err != nil {
		h.Log.ErrorContext(ctx, "Error al ejecutar la simulación", log.ErrAttr(err))

		var demasiadoGrande *http.MaxBytesError
		switch {
		case errors.As(err, &demasiadoGrande):
			http.Error(w, "carga de trabajo demasiado grande", http.StatusRequestEntityTooLarge)
		case errors.Is(err, internal.ErrCargaInvalida), errors.Is(err, planificadores.ErrMarcosInsuficientes):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "error al ejecutar la simulación", http.StatusInternalServerError)
		}
		return
	}

	simulacion := &Simulacion{
		ID:        h.ids.GetUniqueID(),
		Resultado: resultado,
		Traza:     separarLineas(traza.String()),
		Guardada:  true,
	}
	h.guardar(r, simulacion)

	h.Log.InfoContext(ctx, "Simulación ejecutada",
		log.IntAttr("id", simulacion.ID),
		log.IntAttr("procesos", len(resultado.Procesos)),
		log.IntAttr("pares_swap", resultado.ParesSwap),
	)

	h.responderJSON(w, r, http.StatusCreated, simulacion)
}

// guardar intenta dejar el resultado en la caché. Set puede descartarlo en el buffer o la
// política de admisión puede rechazarlo, así que se confirma con Get después de Wait.
func (h *Handler) guardar(r *http.Request, simulacion *Simulacion) {
	h.Resultados.Set(simulacion.ID, simulacion, 1)
	h.Resultados.Wait()

	if _, ok := h.Resultados.Get(simulacion.ID); !ok {
		simulacion.Guardada = false
		h.Log.WarnContext(r.Context(), "La caché rechazó el resultado, no se podrá consultar por id",
			log.IntAttr("id", simulacion.ID),
		)
	}
}

// ObtenerSimulacion devuelve un resultado guardado. Puede no estar si la caché lo descartó.
func (h *Handler) ObtenerSimulacion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.Log.DebugContext(ctx, "ID de simulación inválido", log.StringAttr("id", chi.URLParam(r, "id")))
		http.Error(w, "id de simulación inválido", http.StatusBadRequest)
		return
	}

	simulacion, ok := h.Resultados.Get(id)
	if !ok {
		if h.ids.Emitido(id) {
			http.Error(w, "simulación no encontrada: el resultado ya no está guardado", http.StatusNotFound)
			return
		}
		http.Error(w, "simulación no encontrada", http.StatusNotFound)
		return
	}

	h.responderJSON(w, r, http.StatusOK, simulacion)
}

func (h *Handler) ConsultarParametros(w http.ResponseWriter, r *http.Request) {
	h.responderJSON(w, r, http.StatusOK, h.Parametros)
}

func (h *Handler) responderJSON(w http.ResponseWriter, r *http.Request, status int, valor any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(valor); err != nil {
		h.Log.ErrorContext(r.Context(), "Error al codificar la respuesta", log.ErrAttr(err))
	}
}

func separarLineas(texto string) []string {
	texto = strings.TrimRight(texto, "\n")
	if texto == "" {
		return []string{}
	}
	return strings.Split(texto, "\n")
}
