package planificadores

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/memoria"
)

var ErrInvarianteRota = errors.New("estado de memoria inconsistente")

// VerificarInvariantes comprueba que cada marco asignado pertenezca a exactamente una
// página de un proceso y que libres más asignados sumen el total de marcos de usuario.
func (p *Service) VerificarInvariantes() error {
	duenios := make(map[memoria.Marco]int)
	asignados := 0

	for _, proceso := range p.Planificador.Procesos {
		pid := proceso.PCB.PID
		residentes := proceso.Tabla.Residentes()

		if len(residentes) != proceso.Tabla.MarcosAsignados() {
			return fmt.Errorf("%w: el proceso %d dice tener %d marcos y tiene %d",
				ErrInvarianteRota, pid, proceso.Tabla.MarcosAsignados(), len(residentes))
		}
		if proceso.Estado != internal.EstadoReady && len(residentes) > 0 {
			return fmt.Errorf("%w: el proceso %d en %s conserva %d marcos",
				ErrInvarianteRota, pid, proceso.Estado, len(residentes))
		}

		for _, marco := range residentes {
			if otro, repetido := duenios[marco]; repetido {
				return fmt.Errorf("%w: el marco %d está en los procesos %d y %d",
					ErrInvarianteRota, marco, otro, pid)
			}
			if !p.Memoria.EstaAsignado(marco) {
				return fmt.Errorf("%w: el marco %d del proceso %d figura libre",
					ErrInvarianteRota, marco, pid)
			}
			duenios[marco] = pid
		}
		asignados += len(residentes)
	}

	if p.Memoria.Libres()+asignados != p.Parametros.MarcosUsuario {
		return fmt.Errorf("%w: %d libres + %d asignados != %d marcos de usuario",
			ErrInvarianteRota, p.Memoria.Libres(), asignados, p.Parametros.MarcosUsuario)
	}
	return nil
}
