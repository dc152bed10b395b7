package simulador

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal/planificadores"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

var (
	ErrCargaRechazada         = errors.New("el servidor rechazó la carga de trabajo")
	ErrSimulacionNoEncontrada = errors.New("simulación no encontrada")
	ErrRespuestaInesperada    = errors.New("respuesta inesperada del servidor")
)

// Respuesta es el cuerpo que devuelve el servidor de simulaciones.
type Respuesta struct {
	ID        int                       `json:"id"`
	Resultado *planificadores.Resultado `json:"resultado"`
	Traza     []string                  `json:"traza"`
	Guardada  bool                      `json:"guardada"`
}

type Simulador struct {
	IP     string
	Puerto int
	Log    *slog.Logger
}

func NewSimulador(ip string, puerto int, logger *slog.Logger) *Simulador {
	return &Simulador{
		IP:     ip,
		Puerto: puerto,
		Log:    logger,
	}
}

// EnviarCarga manda una carga de trabajo al servidor y espera a que la simulación termine.
func (s *Simulador) EnviarCarga(ctx context.Context, carga io.Reader) (*Respuesta, error) {
	url := fmt.Sprintf("http://%s:%d/simulaciones", s.IP, s.Puerto)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, carga)
	if err != nil {
		return nil, fmt.Errorf("armando la petición: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.Log.Error("Error al enviar la carga al simulador",
			log.ErrAttr(err),
			log.StringAttr("ip", s.IP),
			log.IntAttr("puerto", s.Puerto),
		)
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return nil, fmt.Errorf("%w: %s", ErrCargaRechazada, leerMensaje(resp.Body))
	default:
		return nil, fmt.Errorf("%w: status %d", ErrRespuestaInesperada, resp.StatusCode)
	}

	respuesta, err := decodificar(resp.Body)
	if err != nil {
		return nil, err
	}

	s.Log.Debug("Simulación remota finalizada",
		log.IntAttr("id", respuesta.ID),
		log.AnyAttr("guardada", respuesta.Guardada),
		log.IntAttr("status_code", resp.StatusCode),
	)

	return respuesta, nil
}

// ConsultarSimulacion pide un resultado ya calculado por su id.
func (s *Simulador) ConsultarSimulacion(ctx context.Context, id int) (*Respuesta, error) {
	url := fmt.Sprintf("http://%s:%d/simulaciones/%d", s.IP, s.Puerto, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("armando la petición: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		s.Log.Error("Error al consultar la simulación",
			log.ErrAttr(err),
			log.IntAttr("id", id),
		)
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: id %d", ErrSimulacionNoEncontrada, id)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrRespuestaInesperada, resp.StatusCode)
	}

	return decodificar(resp.Body)
}

func decodificar(cuerpo io.Reader) (*Respuesta, error) {
	var respuesta Respuesta
	if err := json.NewDecoder(cuerpo).Decode(&respuesta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRespuestaInesperada, err)
	}
	if respuesta.Resultado == nil {
		return nil, fmt.Errorf("%w: falta el resultado", ErrRespuestaInesperada)
	}
	return &respuesta, nil
}

func leerMensaje(cuerpo io.Reader) string {
	mensaje, _ := io.ReadAll(io.LimitReader(cuerpo, 512))
	return strings.TrimSpace(string(mensaje))
}
