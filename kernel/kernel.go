package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sisoputnfrba/tp-paginacion/kernel/cmd/api"
	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/kernel/internal/planificadores"
	"github.com/sisoputnfrba/tp-paginacion/kernel/pkg/simulador"
	"github.com/sisoputnfrba/tp-paginacion/utils/config"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

const (
	configFilePath    = "./configs/config.json"
	archivoPorDefecto = "search.txt"
	timeoutRemoto     = 2 * time.Minute
)

func main() {
	cfg, err := config.IniciarConfiguracion[api.Config](configFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error al cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	logger := log.BuildLogger(cfg.LogLevel)

	modo, args := "simular", os.Args[1:]
	if len(args) > 0 {
		modo, args = args[0], args[1:]
	}

	switch modo {
	case "simular":
		err = simular(cfg, logger, args)
	case "servidor":
		err = servir(cfg, logger)
	case "remoto":
		err = remoto(cfg, logger, args)
	default:
		err = fmt.Errorf("modo desconocido %q, se espera simular, servidor o remoto", modo)
	}

	if err != nil {
		logger.Error("Kernel finalizado con error", log.StringAttr("modo", modo), log.ErrAttr(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simular ejecuta la carga localmente con los parámetros fijos del sistema.
func simular(cfg *api.Config, logger *slog.Logger, args []string) error {
	archivo := cfg.ArchivoBusquedas
	if len(args) > 0 {
		archivo = args[0]
	}
	if archivo == "" {
		archivo = archivoPorDefecto
	}

	f, err := os.Open(archivo)
	if err != nil {
		return fmt.Errorf("abriendo archivo de búsquedas: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	logger.Debug("Iniciando simulación local", log.StringAttr("archivo", archivo))

	resultado, err := planificadores.Simular(logger, internal.ParametrosPorDefecto(), f, os.Stdout)
	if err != nil {
		return err
	}
	return planificadores.EscribirResumen(os.Stdout, resultado.Estadisticas)
}

func servir(cfg *api.Config, logger *slog.Logger) error {
	h, err := api.NewHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer h.Close()

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.IpKernel, cfg.PortKernel),
		Handler: h.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		apagado, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(apagado)
	}()

	logger.Info("Servidor de simulaciones escuchando", log.StringAttr("addr", server.Addr))

	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// remoto manda la carga al servidor configurado e imprime lo mismo que una simulación local.
func remoto(cfg *api.Config, logger *slog.Logger, args []string) error {
	if len(args) < 1 {
		return errors.New("falta el archivo de búsquedas")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("abriendo archivo de búsquedas: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeoutRemoto)
	defer cancel()

	s := simulador.NewSimulador(cfg.IpSimulador, cfg.PortSimulador, logger)
	respuesta, err := s.EnviarCarga(ctx, f)
	if err != nil {
		return err
	}

	for _, linea := range respuesta.Traza {
		fmt.Println(linea)
	}
	return planificadores.EscribirResumen(os.Stdout, respuesta.Resultado.Estadisticas)
}
