package api

import (
	"github.com/sisoputnfrba/tp-paginacion/kernel/internal/planificadores"
)

type Config struct {
	IpKernel            string `json:"ip_kernel"`
	PortKernel          int    `json:"port_kernel"`
	LogLevel            string `json:"log_level"`
	ArchivoBusquedas    string `json:"archivo_busquedas"`
	CapacidadResultados int    `json:"capacidad_resultados"`
	IpSimulador         string `json:"ip_simulador"`
	PortSimulador       int    `json:"port_simulador"`
}

// Simulacion es lo que el servidor guarda y devuelve por cada carga ejecutada.
// Guardada es false si la caché no admitió el resultado y no se podrá consultar por id.
type Simulacion struct {
	ID        int                       `json:"id"`
	Resultado *planificadores.Resultado `json:"resultado"`
	Traza     []string                  `json:"traza"`
	Guardada  bool                      `json:"guardada"`
}
