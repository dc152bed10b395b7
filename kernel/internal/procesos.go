package internal

import (
	"github.com/sisoputnfrba/tp-paginacion/memoria"
)

// NewProceso crea el descriptor en READY con la tabla vacía. Las páginas esenciales las
// asigna el planificador, que es el dueño del pool de marcos.
func NewProceso(pid, tamanioArreglo int, busquedas []int, tamanioTabla int) *Proceso {
	return &Proceso{
		PCB: &PCB{
			PID:            pid,
			MetricasEstado: map[Estado]int{EstadoReady: 1},
		},
		TamanioArreglo: tamanioArreglo,
		Busquedas:      busquedas,
		Tabla:          memoria.NewTablaDePaginas(tamanioTabla),
		Estado:         EstadoReady,
	}
}

// BusquedaActual devuelve la clave de la próxima búsqueda, si queda alguna.
func (p *Proceso) BusquedaActual() (int, bool) {
	if p.Terminado() {
		return 0, false
	}
	return p.Busquedas[p.PCB.PC], true
}

func (p *Proceso) Terminado() bool {
	return p.PCB.PC >= len(p.Busquedas)
}

// Ejecutable indica si el despachador puede darle un turno.
func (p *Proceso) Ejecutable() bool {
	return p.Estado == EstadoReady && !p.Terminado()
}

// EnMemoria indica si el proceso cuenta para el grado de multiprogramación. Los procesos
// finalizados siguen contando aunque ya no tengan marcos.
func (p *Proceso) EnMemoria() bool {
	return p.Estado != EstadoSuspReady
}

// CambiarEstado registra la transición y devuelve el estado anterior.
func (p *Proceso) CambiarEstado(nuevo Estado) Estado {
	anterior := p.Estado
	p.Estado = nuevo
	p.PCB.MetricasEstado[nuevo]++
	return anterior
}
