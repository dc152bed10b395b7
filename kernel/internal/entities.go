package internal

import (
	"github.com/sisoputnfrba/tp-paginacion/memoria"
)

const (
	// EstadoReady es un proceso con sus páginas esenciales que todavía tiene búsquedas pendientes.
	EstadoReady Estado = "READY"

	// EstadoSuspReady es un proceso desalojado por falta de marcos, esperando en la cola de swap.
	EstadoSuspReady Estado = "SUSP.READY"

	// EstadoExit es un proceso que terminó todas sus búsquedas y liberó sus marcos.
	EstadoExit Estado = "EXIT"
)

type Estado string

type MetricasProceso struct {
	AccesosPagina   int `json:"accesos_pagina"`
	FallosPagina    int `json:"fallos_pagina"`
	BajadasAlSwap   int `json:"bajadas_a_swap"`
	SubidasAMemPpal int `json:"subidas_a_memoria_principal"`
}

type PCB struct {
	PID            int             `json:"pid"`
	PC             int             `json:"pc"` // próxima búsqueda a ejecutar
	MetricasEstado map[Estado]int  `json:"metricas_estado"`
	Metricas       MetricasProceso `json:"metricas"`
}

type Proceso struct {
	PCB            *PCB
	TamanioArreglo int
	Busquedas      []int
	Tabla          *memoria.TablaDePaginas
	Estado         Estado
}
