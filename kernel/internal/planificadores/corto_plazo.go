package planificadores

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

var ErrEstancamiento = errors.New("no hay procesos para ejecutar ni para readmitir")

// SiguienteProceso recorre los PIDs en orden circular a partir del último despachado y
// devuelve el primero que esté READY con búsquedas pendientes.
func (p *Service) SiguienteProceso() (*internal.Proceso, bool) {
	procesos := p.Planificador.Procesos
	for i := 1; i <= len(procesos); i++ {
		pid := (p.ultimoPID + i) % len(procesos)
		if procesos[pid].Ejecutable() {
			p.ultimoPID = pid
			return procesos[pid], true
		}
	}
	return nil, false
}

// Finalizados indica si todos los procesos llegaron a EXIT.
func (p *Service) Finalizados() bool {
	for _, proceso := range p.Planificador.Procesos {
		if proceso.Estado != internal.EstadoExit {
			return false
		}
	}
	return true
}

// EjecutarPaso le da un turno al próximo proceso. Devuelve false cuando ya no queda
// trabajo.
//
// Si ningún proceso está listo pero quedan procesos sin terminar, todos ellos están
// suspendidos y la memoria de usuario está libre; como solo se readmite al terminar un
// proceso, se fuerza una readmisión para no quedar girando en vacío.
func (p *Service) EjecutarPaso() (bool, error) {
	if p.Finalizados() {
		return false, nil
	}

	proceso, ok := p.SiguienteProceso()
	if !ok {
		cola := p.Planificador.SuspReadyQueue
		p.Log.Warn("Ningún proceso listo para ejecutar, se fuerza la readmisión",
			log.IntAttr("suspendidos", cola.Len()),
			log.IntAttr("marcos_libres", p.Memoria.Libres()),
		)

		readmitidos, err := p.IntentarReadmitir()
		if err != nil {
			return false, err
		}
		if readmitidos == 0 {
			return false, fmt.Errorf("%w: %d procesos en swap, %d marcos libres",
				ErrEstancamiento, cola.Len(), p.Memoria.Libres())
		}
		return true, nil
	}

	if err := p.EjecutarBusqueda(proceso); err != nil {
		return false, err
	}
	return true, nil
}

// Ejecutar corre turnos hasta que todos los procesos terminan.
func (p *Service) Ejecutar() error {
	for {
		seguir, err := p.EjecutarPaso()
		if err != nil {
			return err
		}

		if p.VerificarCadaPaso {
			if err = p.VerificarInvariantes(); err != nil {
				return err
			}
		}

		if !seguir {
			p.Log.Info("Todos los procesos finalizaron",
				log.IntAttr("procesos", len(p.Planificador.Procesos)),
			)
			return nil
		}
	}
}
