package planificadores

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// parametrosChicos usa páginas de un solo elemento: el elemento i vive en la página i+2.
func parametrosChicos(marcos int) internal.Parametros {
	return internal.Parametros{
		TamanioPagina:       4,
		TamanioElemento:     4,
		MarcosTotales:       marcos,
		MarcosUsuario:       marcos,
		TamanioTablaPaginas: 16,
		PaginasEsenciales:   2,
		MaxProcesos:         8,
		MaxBusquedas:        8,
	}
}

func nuevoServicio(t *testing.T, params internal.Parametros, carga string) (*Service, *bytes.Buffer) {
	t.Helper()

	salida := &bytes.Buffer{}
	p, err := NewPlanificador(log.BuildLogger("error"), params, salida)
	require.NoError(t, err)

	c, err := internal.LeerCarga(strings.NewReader(carga), params)
	require.NoError(t, err)
	require.NoError(t, p.CargarProcesos(c))

	p.VerificarCadaPaso = true
	return p, salida
}

func lineas(salida *bytes.Buffer) []string {
	texto := strings.TrimRight(salida.String(), "\n")
	if texto == "" {
		return nil
	}
	return strings.Split(texto, "\n")
}
