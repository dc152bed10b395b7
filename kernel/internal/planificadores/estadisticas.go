package planificadores

// Estadisticas son los contadores globales de la simulación. Solo se leen al final.
type Estadisticas struct {
	AccesosPagina        int `json:"accesos_pagina"`
	FallosPagina         int `json:"fallos_pagina"`
	EventosSwap          int `json:"eventos_swap"` // bajadas y subidas por separado
	MinMultiprogramacion int `json:"grado_multiprogramacion"`
}

func (e *Estadisticas) RegistrarAcceso() {
	e.AccesosPagina++
}

func (e *Estadisticas) RegistrarFallo() {
	e.FallosPagina++
}

func (e *Estadisticas) RegistrarSwap() {
	e.EventosSwap++
}

func (e *Estadisticas) ObservarMultiprogramacion(procesos int) {
	if procesos < e.MinMultiprogramacion {
		e.MinMultiprogramacion = procesos
	}
}

// ParesSwap es la cantidad de pares bajada/subida.
func (e Estadisticas) ParesSwap() int {
	return e.EventosSwap / 2
}
