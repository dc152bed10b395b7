package planificadores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sisoputnfrba/tp-paginacion/kernel/internal"
)

func TestVerificarInvariantes(t *testing.T) {
	tests := []struct {
		name      string
		romper    func(t *testing.T, p *Service)
		wantError bool
	}{
		{
			name:   "Estado recien cargado",
			romper: func(t *testing.T, p *Service) {},
		},
		{
			name: "Marco compartido entre procesos",
			romper: func(t *testing.T, p *Service) {
				marco, ok := p.Planificador.Procesos[0].Tabla.Traducir(0)
				require.True(t, ok)
				require.NoError(t, p.Planificador.Procesos[1].Tabla.Instalar(5, marco))
			},
			wantError: true,
		},
		{
			name: "Marco perdido",
			romper: func(t *testing.T, p *Service) {
				_, err := p.Memoria.Asignar()
				require.NoError(t, err)
			},
			wantError: true,
		},
		{
			name: "Marco instalado sin asignar",
			romper: func(t *testing.T, p *Service) {
				require.NoError(t, p.Planificador.Procesos[0].Tabla.Instalar(5, 0))
			},
			wantError: true,
		},
		{
			name: "Proceso suspendido con marcos",
			romper: func(t *testing.T, p *Service) {
				p.Planificador.Procesos[1].Estado = internal.EstadoSuspReady
			},
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := nuevoServicio(t, parametrosChicos(8), "2 1\n4 0\n4 0\n")
			tt.romper(t, p)

			err := p.VerificarInvariantes()
			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvarianteRota)
				return
			}
			assert.NoError(t, err)
		})
	}
}
