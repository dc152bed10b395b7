package planificadores

import (
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// EjecutarBusqueda corre completa la búsqueda binaria actual del proceso. Cada punto
// medio evaluado es un acceso a la página que contiene ese elemento.
//
// Si un fallo de página termina en suspensión, la búsqueda se abandona sin guardar L ni R
// y el PC no avanza: el próximo turno del proceso la repite desde el principio.
func (p *Service) EjecutarBusqueda(proceso *internal.Proceso) error {
	if proceso.Estado != internal.EstadoReady {
		return nil
	}
	clave, ok := proceso.BusquedaActual()
	if !ok {
		return nil
	}

	p.Log.Debug(fmt.Sprintf("Busqueda %d del proceso %d", proceso.PCB.PC+1, proceso.PCB.PID),
		log.IntAttr("clave", clave),
	)

	l, r := 0, proceso.TamanioArreglo-1
	for l < r {
		m := (l + r) / 2
		pagina := p.Parametros.PaginaDeElemento(m)

		p.Estadisticas.RegistrarAcceso()
		proceso.PCB.Metricas.AccesosPagina++

		if _, presente := proceso.Tabla.Traducir(pagina); !presente {
			p.Estadisticas.RegistrarFallo()
			proceso.PCB.Metricas.FallosPagina++

			resuelto, err := p.ManejarFalloDePagina(proceso, pagina)
			if err != nil {
				return err
			}
			if !resuelto {
				return nil
			}
		}

		if clave <= m {
			r = m
		} else {
			l = m + 1
		}
	}

	proceso.PCB.PC++
	if proceso.Terminado() {
		return p.FinalizarProceso(proceso)
	}
	return nil
}

// FinalizarProceso libera todos los marcos del proceso, lo pasa a EXIT y aprovecha los
// marcos liberados para readmitir procesos suspendidos.
func (p *Service) FinalizarProceso(proceso *internal.Proceso) error {
	if err := proceso.Tabla.Limpiar(p.Memoria); err != nil {
		return fmt.Errorf("finalizando proceso %d: %w", proceso.PCB.PID, err)
	}

	anterior := proceso.CambiarEstado(internal.EstadoExit)
	p.logCambioDeEstado(proceso, anterior)

	_, err := p.IntentarReadmitir()
	return err
}
