package internal

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestParametrosPorDefecto(t *testing.T) {
	ass := assert.New(t)
	p := ParametrosPorDefecto()

	ass.NoError(p.Validar())
	ass.Equal(4096, p.TamanioPagina)
	ass.Equal(12288, p.MarcosUsuario)
	ass.Equal(16384, p.MarcosTotales)
	ass.Equal(2048, p.TamanioTablaPaginas)
	ass.Equal(10, p.PaginasEsenciales)
	ass.Equal(500, p.MaxProcesos)
	ass.Equal(100, p.MaxBusquedas)
}

func TestParametros_PaginaDeElemento(t *testing.T) {
	p := ParametrosPorDefecto()

	tests := []struct {
		indice int
		want   int
	}{
		{indice: 0, want: 10},
		{indice: 2, want: 10},
		{indice: 1023, want: 10},
		{indice: 1024, want: 11},
		{indice: 5000, want: 14},
	}
	for _, tt := range tests {
		t.Run(itoa(tt.indice), func(t *testing.T) {
			assert.Equal(t, tt.want, p.PaginaDeElemento(tt.indice))
		})
	}
}

func TestParametros_Validar(t *testing.T) {
	tests := []struct {
		name      string
		modificar func(p *Parametros)
		wantErr   bool
	}{
		{name: "Por defecto", modificar: func(p *Parametros) {}},
		{name: "Pagina nula", modificar: func(p *Parametros) { p.TamanioPagina = 0 }, wantErr: true},
		{name: "Marcos negativos", modificar: func(p *Parametros) { p.MarcosUsuario = -1 }, wantErr: true},
		{name: "Mas marcos de usuario que totales", modificar: func(p *Parametros) { p.MarcosUsuario = p.MarcosTotales + 1 }, wantErr: true},
		{name: "Esenciales ocupan la tabla", modificar: func(p *Parametros) { p.PaginasEsenciales = p.TamanioTablaPaginas }, wantErr: true},
		{name: "Esenciales no entran en memoria", modificar: func(p *Parametros) {
			p.MarcosUsuario = 4
			p.PaginasEsenciales = 5
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParametrosPorDefecto()
			tt.modificar(&p)
			if tt.wantErr {
				assert.ErrorIs(t, p.Validar(), ErrParametrosInvalidos)
				return
			}
			assert.NoError(t, p.Validar())
		})
	}
}

func TestParametros_EntraEnTabla(t *testing.T) {
	p := ParametrosPorDefecto()

	tests := []struct {
		name    string
		tamanio int
		want    bool
	}{
		{name: "Un elemento", tamanio: 1, want: true},
		{name: "Ultima pagina completa", tamanio: 2086912, want: true},
		{name: "Un elemento de mas", tamanio: 2086913, want: false},
		{name: "Cero", tamanio: 0, want: false},
		{name: "Negativo", tamanio: -4, want: false},
		{name: "Producto que da pagina negativa", tamanio: 4611686018427387905, want: false},
		{name: "Producto que da pagina positiva", tamanio: 2305843009213693953, want: false},
		{name: "Maximo int", tamanio: math.MaxInt, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.EntraEnTabla(tt.tamanio))
		})
	}
}

func TestParametros_MaxTamanioArregloConElementosQueNoDividenLaPagina(t *testing.T) {
	ass := assert.New(t)
	p := Parametros{TamanioPagina: 10, TamanioElemento: 4, TamanioTablaPaginas: 3, PaginasEsenciales: 1}

	// 20 bytes útiles: el elemento 4 empieza en el byte 16, en la página 2.
	ass.Equal(5, p.MaxTamanioArreglo())
	ass.Equal(2, p.PaginaDeElemento(4))
	ass.True(p.EntraEnTabla(5))
	ass.False(p.EntraEnTabla(6))
}

func TestParametros_ValidarReportaElPrimerInvalido(t *testing.T) {
	p := ParametrosPorDefecto()
	p.TamanioPagina = 0
	p.MaxBusquedas = 0

	for i := 0; i < 20; i++ {
		err := p.Validar()
		assert.ErrorIs(t, err, ErrParametrosInvalidos)
		assert.Contains(t, err.Error(), "tamanio_pagina")
	}
}
