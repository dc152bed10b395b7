package planificadores

import (
	"errors"
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/memoria"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// ManejarFalloDePagina intenta asignar un marco a la página faltante. Si no quedan
// marcos libres el proceso completo se suspende y se devuelve false: quien llamó debe
// abandonar la búsqueda en curso. El error solo indica un estado inconsistente.
func (p *Service) ManejarFalloDePagina(proceso *internal.Proceso, pagina int) (bool, error) {
	marco, err := p.Memoria.Asignar()
	if errors.Is(err, memoria.ErrSinMarcosLibres) {
		p.Log.Debug("Sin marcos libres, se suspende el proceso",
			log.IntAttr("pid", proceso.PCB.PID),
			log.IntAttr("pagina", pagina),
			log.IntAttr("marcos_del_proceso", proceso.Tabla.MarcosAsignados()),
		)
		if err = p.SuspenderProceso(proceso); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = proceso.Tabla.Instalar(pagina, marco); err != nil {
		return false, errors.Join(
			fmt.Errorf("proceso %d: %w", proceso.PCB.PID, err),
			p.Memoria.Liberar(marco),
		)
	}

	p.Log.Debug("Marco asignado",
		log.IntAttr("pid", proceso.PCB.PID),
		log.IntAttr("pagina", pagina),
		log.IntAttr("marco", int(marco)),
	)
	return true, nil
}
