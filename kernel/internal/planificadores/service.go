package planificadores

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/memoria"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

var (
	ErrMarcosInsuficientes = errors.New("marcos insuficientes para el proceso")
	ErrProcesosCargados    = errors.New("los procesos ya fueron cargados")
)

// Service es el contexto de una simulación. Es dueño del pool de marcos, de los procesos,
// de la cola de swap y de las estadísticas; nada de eso se comparte entre simulaciones.
type Service struct {
	Planificador *Planificador
	Log          *slog.Logger
	Memoria      *memoria.Marcos
	Parametros   internal.Parametros
	Estadisticas *Estadisticas

	// Salida recibe los mensajes de progreso con formato fijo.
	Salida io.Writer

	// VerificarCadaPaso corre VerificarInvariantes después de cada turno.
	VerificarCadaPaso bool

	ultimoPID int
}

type Planificador struct {
	Procesos       []*internal.Proceso // indexado por PID
	SuspReadyQueue *ColaSwap
}

// NewPlanificador crea una simulación vacía con todos los marcos de usuario libres.
func NewPlanificador(logger *slog.Logger, params internal.Parametros, salida io.Writer) (*Service, error) {
	if err := params.Validar(); err != nil {
		return nil, err
	}
	if salida == nil {
		salida = io.Discard
	}

	return &Service{
		Planificador: &Planificador{
			Procesos:       make([]*internal.Proceso, 0, params.MaxProcesos),
			SuspReadyQueue: NewColaSwap(params.MaxProcesos),
		},
		Log:          logger,
		Memoria:      memoria.NewMarcos(params.MarcosUsuario),
		Parametros:   params,
		Estadisticas: &Estadisticas{},
		Salida:       salida,
		ultimoPID:    -1,
	}, nil
}

// CargarProcesos crea un proceso por descriptor, en orden de PID, y le asigna sus
// páginas esenciales.
func (p *Service) CargarProcesos(carga *internal.Carga) error {
	if len(p.Planificador.Procesos) > 0 {
		return ErrProcesosCargados
	}
	if len(carga.Procesos) > p.Parametros.MaxProcesos {
		return fmt.Errorf("cargando %d procesos: %w", len(carga.Procesos), ErrCapacidadExcedida)
	}

	for pid, descriptor := range carga.Procesos {
		if !p.Parametros.EntraEnTabla(descriptor.TamanioArreglo) {
			return fmt.Errorf("%w: el arreglo del proceso %d (%d elementos) excede la tabla de páginas",
				internal.ErrCargaInvalida, pid, descriptor.TamanioArreglo)
		}
		necesarias := p.Parametros.PaginaDeElemento(descriptor.TamanioArreglo-1) + 1
		if necesarias > p.Parametros.MarcosUsuario {
			return fmt.Errorf("%w: el proceso %d puede necesitar %d marcos y hay %d",
				ErrMarcosInsuficientes, pid, necesarias, p.Parametros.MarcosUsuario)
		}

		proceso := internal.NewProceso(pid, descriptor.TamanioArreglo, descriptor.Busquedas,
			p.Parametros.TamanioTablaPaginas)
		if err := p.asignarEsenciales(proceso); err != nil {
			return err
		}
		p.Planificador.Procesos = append(p.Planificador.Procesos, proceso)

		p.Log.Debug("Proceso creado",
			log.IntAttr("pid", pid),
			log.IntAttr("tamanio_arreglo", descriptor.TamanioArreglo),
			log.IntAttr("busquedas", len(descriptor.Busquedas)),
		)
	}

	p.Estadisticas.MinMultiprogramacion = len(p.Planificador.Procesos)
	p.Log.Info("Procesos cargados",
		log.IntAttr("procesos", len(p.Planificador.Procesos)),
		log.IntAttr("marcos_libres", p.Memoria.Libres()),
	)
	return nil
}

// asignarEsenciales instala un marco nuevo en cada página reservada del proceso.
func (p *Service) asignarEsenciales(proceso *internal.Proceso) error {
	if p.Memoria.Libres() < p.Parametros.PaginasEsenciales {
		return fmt.Errorf("%w: el proceso %d necesita %d marcos esenciales y hay %d libres",
			ErrMarcosInsuficientes, proceso.PCB.PID, p.Parametros.PaginasEsenciales, p.Memoria.Libres())
	}

	for pagina := 0; pagina < p.Parametros.PaginasEsenciales; pagina++ {
		marco, err := p.Memoria.Asignar()
		if err != nil {
			return err
		}
		if err = proceso.Tabla.Instalar(pagina, marco); err != nil {
			return err
		}
	}
	return nil
}

// ProcesosEnMemoria cuenta los procesos que no están suspendidos (READY o EXIT).
func (p *Service) ProcesosEnMemoria() int {
	cantidad := 0
	for _, proceso := range p.Planificador.Procesos {
		if proceso.EnMemoria() {
			cantidad++
		}
	}
	return cantidad
}

func (p *Service) logCambioDeEstado(proceso *internal.Proceso, anterior internal.Estado) {
	// "## (<PID>) Pasa del estado <ESTADO_ANTERIOR> al estado <ESTADO_ACTUAL>"
	p.Log.Info(fmt.Sprintf("## (%d) Pasa del estado %s al estado %s", proceso.PCB.PID, anterior, proceso.Estado))
}
