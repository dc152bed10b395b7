package planificadores

import (
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// SuspenderProceso desaloja al proceso completo: devuelve todos sus marcos, lo pasa a
// SUSP.READY y lo pone al final de la cola de swap. Un proceso que no está en READY no
// se toca.
func (p *Service) SuspenderProceso(proceso *internal.Proceso) error {
	if proceso.Estado != internal.EstadoReady {
		return nil
	}

	if err := proceso.Tabla.Limpiar(p.Memoria); err != nil {
		return fmt.Errorf("suspendiendo proceso %d: %w", proceso.PCB.PID, err)
	}
	if err := p.Planificador.SuspReadyQueue.Encolar(proceso.PCB.PID); err != nil {
		return err
	}

	anterior := proceso.CambiarEstado(internal.EstadoSuspReady)
	proceso.PCB.Metricas.BajadasAlSwap++
	p.Estadisticas.RegistrarSwap()

	enMemoria := p.ProcesosEnMemoria()
	p.Estadisticas.ObservarMultiprogramacion(enMemoria)

	p.logCambioDeEstado(proceso, anterior)
	fmt.Fprintf(p.Salida, "+++ Swapping out process %3d [%3d active processes]\n", proceso.PCB.PID, enMemoria)
	return nil
}

// IntentarReadmitir saca procesos de la cola de swap, del más antiguo al más nuevo,
// mientras haya marcos para sus páginas esenciales. Devuelve cuántos readmitió.
func (p *Service) IntentarReadmitir() (int, error) {
	cola := p.Planificador.SuspReadyQueue
	readmitidos := 0

	for !cola.Vacia() && p.Memoria.Libres() >= p.Parametros.PaginasEsenciales {
		pid, _ := cola.Desencolar()
		proceso := p.Planificador.Procesos[pid]
		if proceso.Estado != internal.EstadoSuspReady {
			continue
		}

		if err := p.readmitir(proceso); err != nil {
			return readmitidos, err
		}
		readmitidos++
	}

	if !cola.Vacia() {
		p.Log.Debug("Procesos esperando marcos en swap",
			log.IntAttr("suspendidos", cola.Len()),
			log.IntAttr("marcos_libres", p.Memoria.Libres()),
		)
	}
	return readmitidos, nil
}

func (p *Service) readmitir(proceso *internal.Proceso) error {
	if err := p.asignarEsenciales(proceso); err != nil {
		return fmt.Errorf("readmitiendo proceso %d: %w", proceso.PCB.PID, err)
	}

	anterior := proceso.CambiarEstado(internal.EstadoReady)
	proceso.PCB.Metricas.SubidasAMemPpal++
	p.Estadisticas.RegistrarSwap()

	p.logCambioDeEstado(proceso, anterior)
	fmt.Fprintf(p.Salida, "+++ Swapping in process %3d [%3d active processes]\n", proceso.PCB.PID, p.ProcesosEnMemoria())
	return nil
}
