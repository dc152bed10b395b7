package planificadores

import (
	"fmt"
	"io"
)

const (
	MensajeDatosLeidos        = "+++ Simulation data read from file"
	MensajeKernelInicializado = "+++ Kernel data initialized"
)

// EscribirResumen imprime el resumen final con el formato fijo de la consola.
func EscribirResumen(w io.Writer, e Estadisticas) error {
	_, err := fmt.Fprintf(w,
		"+++ Page access summary\n"+
			"\tTotal number of page accesses  = %7d\n"+
			"\tTotal number of page faults    = %7d\n"+
			"\tTotal number of swaps          = %7d\n"+
			"\tDegree of multiprogramming     = %7d\n",
		e.AccesosPagina, e.FallosPagina, e.ParesSwap(), e.MinMultiprogramacion)
	return err
}
