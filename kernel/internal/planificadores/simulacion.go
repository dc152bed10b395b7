package planificadores

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

type Resultado struct {
	Estadisticas Estadisticas   `json:"estadisticas"`
	ParesSwap    int            `json:"pares_swap"`
	Procesos     []internal.PCB `json:"procesos"`
}

// Resultado arma el resumen de la simulación con una copia de cada PCB.
func (p *Service) Resultado() *Resultado {
	resultado := &Resultado{
		Estadisticas: *p.Estadisticas,
		ParesSwap:    p.Estadisticas.ParesSwap(),
		Procesos:     make([]internal.PCB, 0, len(p.Planificador.Procesos)),
	}
	for _, proceso := range p.Planificador.Procesos {
		pcb := *proceso.PCB
		pcb.MetricasEstado = make(map[internal.Estado]int, len(proceso.PCB.MetricasEstado))
		for estado, veces := range proceso.PCB.MetricasEstado {
			pcb.MetricasEstado[estado] = veces
		}
		resultado.Procesos = append(resultado.Procesos, pcb)
	}
	return resultado
}

// Simular lee la carga de trabajo, la ejecuta hasta el final y devuelve las estadísticas.
// Los mensajes de progreso van a salida; el resumen final lo imprime quien llama.
func Simular(logger *slog.Logger, params internal.Parametros, entrada io.Reader, salida io.Writer) (*Resultado, error) {
	if salida == nil {
		salida = io.Discard
	}

	carga, err := internal.LeerCarga(entrada, params)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(salida, MensajeDatosLeidos)

	p, err := NewPlanificador(logger, params, salida)
	if err != nil {
		return nil, err
	}
	if err = p.CargarProcesos(carga); err != nil {
		return nil, err
	}
	fmt.Fprintln(salida, MensajeKernelInicializado)

	if err = p.Ejecutar(); err != nil {
		return nil, err
	}
	if err = p.VerificarInvariantes(); err != nil {
		return nil, err
	}

	resultado := p.Resultado()
	logger.Info("Simulación finalizada",
		log.StringAttr("accesos", humanize.Comma(int64(resultado.Estadisticas.AccesosPagina))),
		log.StringAttr("fallos", humanize.Comma(int64(resultado.Estadisticas.FallosPagina))),
		log.IntAttr("pares_swap", resultado.ParesSwap),
		log.IntAttr("grado_multiprogramacion", resultado.Estadisticas.MinMultiprogramacion),
	)
	return resultado, nil
}
