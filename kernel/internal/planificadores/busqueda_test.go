package planificadores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
)

func TestEjecutarBusqueda_ArregloDeUnElemento(t *testing.T) {
	ass := assert.New(t)
	p, _ := nuevoServicio(t, internal.ParametrosPorDefecto(), "1 1\n1 0\n")
	proceso := p.Planificador.Procesos[0]

	require.NoError(t, p.EjecutarBusqueda(proceso))
	ass.Equal(0, p.Estadisticas.AccesosPagina)
	ass.Equal(0, p.Estadisticas.FallosPagina)
	ass.Equal(internal.EstadoExit, proceso.Estado)
	ass.Equal(internal.MarcosUsuario, p.Memoria.Libres())
}

func TestEjecutarBusqueda_Accesos(t *testing.T) {
	tests := []struct {
		name        string
		carga       string
		wantAccesos int
		wantFallos  int
	}{
		// Los puntos medios 1 y 2 caen en la página 10, la primera no esencial
		{name: "Arreglo de cuatro", carga: "1 1\n4 2\n", wantAccesos: 2, wantFallos: 1},
		{name: "Arreglo de dos", carga: "1 1\n2 1\n", wantAccesos: 1, wantFallos: 1},
		// 2048 elementos ocupan las páginas 10 y 11; los puntos medios 1023, 1535, ... 2046
		{name: "Dos paginas", carga: "1 1\n2048 2047\n", wantAccesos: 11, wantFallos: 2},
		{name: "Clave menor que el arreglo", carga: "1 1\n8 -5\n", wantAccesos: 3, wantFallos: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, salida := nuevoServicio(t, internal.ParametrosPorDefecto(), tt.carga)
			proceso := p.Planificador.Procesos[0]

			require.NoError(t, p.EjecutarBusqueda(proceso))
			assert.Equal(t, tt.wantAccesos, p.Estadisticas.AccesosPagina)
			assert.Equal(t, tt.wantFallos, p.Estadisticas.FallosPagina)
			assert.Equal(t, 0, p.Estadisticas.EventosSwap)
			assert.Equal(t, internal.EstadoExit, proceso.Estado)
			assert.Empty(t, salida.String())
			assert.NoError(t, p.VerificarInvariantes())
		})
	}
}

func TestEjecutarBusqueda_AvanzaElPC(t *testing.T) {
	ass := assert.New(t)
	p, _ := nuevoServicio(t, parametrosChicos(8), "1 2\n4 0 3\n")
	proceso := p.Planificador.Procesos[0]

	require.NoError(t, p.EjecutarBusqueda(proceso))
	ass.Equal(1, proceso.PCB.PC)
	ass.Equal(internal.EstadoReady, proceso.Estado)
	// Páginas esenciales más las páginas 3 y 2
	ass.Equal(4, proceso.Tabla.MarcosAsignados())

	require.NoError(t, p.EjecutarBusqueda(proceso))
	ass.Equal(2, proceso.PCB.PC)
	ass.Equal(internal.EstadoExit, proceso.Estado)
	ass.Equal(0, proceso.Tabla.MarcosAsignados())
	ass.Equal(8, p.Memoria.Libres())
	ass.Equal(4, p.Estadisticas.AccesosPagina)
	ass.Equal(3, p.Estadisticas.FallosPagina)
}

func TestEjecutarBusqueda_SeReiniciaTrasSuspension(t *testing.T) {
	ass := assert.New(t)
	p, _ := nuevoServicio(t, parametrosChicos(7), "2 1\n4 0\n4 0\n")
	procesos := p.Planificador.Procesos

	// El proceso 1 se queda con los tres marcos libres
	for _, pagina := range []int{2, 3, 4} {
		ok, err := p.ManejarFalloDePagina(procesos[1], pagina)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.NoError(t, p.EjecutarBusqueda(procesos[0]))
	ass.Equal(internal.EstadoSuspReady, procesos[0].Estado)
	ass.Equal(0, procesos[0].PCB.PC)
	ass.Equal(1, p.Estadisticas.AccesosPagina)

	// Un proceso suspendido no ejecuta
	require.NoError(t, p.EjecutarBusqueda(procesos[0]))
	ass.Equal(1, p.Estadisticas.AccesosPagina)

	require.NoError(t, p.FinalizarProceso(procesos[1]))
	ass.Equal(internal.EstadoReady, procesos[0].Estado)

	// La búsqueda arranca de nuevo desde L=0, R=3
	require.NoError(t, p.EjecutarBusqueda(procesos[0]))
	ass.Equal(internal.EstadoExit, procesos[0].Estado)
	ass.Equal(3, p.Estadisticas.AccesosPagina)
	ass.Equal(3, p.Estadisticas.FallosPagina)

	metricas := procesos[0].PCB.Metricas
	ass.Equal(3, metricas.AccesosPagina)
	ass.Equal(3, metricas.FallosPagina)
	ass.Equal(1, metricas.BajadasAlSwap)
	ass.Equal(1, metricas.SubidasAMemPpal)
	ass.NoError(p.VerificarInvariantes())
}
