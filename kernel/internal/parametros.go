package internal

import (
	"errors"
	"fmt"
)

// Parámetros fijos del sistema simulado.
const (
	TamanioPagina       = 4096
	TamanioElemento     = 4
	MarcosTotales       = 16384
	MarcosUsuario       = 12288
	TamanioTablaPaginas = 2048
	PaginasEsenciales   = 10
	MaxProcesos         = 500
	MaxBusquedas        = 100
)

var ErrParametrosInvalidos = errors.New("parámetros del sistema inválidos")

type Parametros struct {
	TamanioPagina       int `json:"tamanio_pagina"`
	TamanioElemento     int `json:"tamanio_elemento"`
	MarcosTotales       int `json:"marcos_totales"`
	MarcosUsuario       int `json:"marcos_usuario"`
	TamanioTablaPaginas int `json:"tamanio_tabla_paginas"`
	PaginasEsenciales   int `json:"paginas_esenciales"`
	MaxProcesos         int `json:"max_procesos"`
	MaxBusquedas        int `json:"max_busquedas"`
}

func ParametrosPorDefecto() Parametros {
	return Parametros{
		TamanioPagina:       TamanioPagina,
		TamanioElemento:     TamanioElemento,
		MarcosTotales:       MarcosTotales,
		MarcosUsuario:       MarcosUsuario,
		TamanioTablaPaginas: TamanioTablaPaginas,
		PaginasEsenciales:   PaginasEsenciales,
		MaxProcesos:         MaxProcesos,
		MaxBusquedas:        MaxBusquedas,
	}
}

func (p Parametros) Validar() error {
	positivos := []struct {
		nombre string
		valor  int
	}{
		{"tamanio_pagina", p.TamanioPagina},
		{"tamanio_elemento", p.TamanioElemento},
		{"marcos_totales", p.MarcosTotales},
		{"marcos_usuario", p.MarcosUsuario},
		{"tamanio_tabla_paginas", p.TamanioTablaPaginas},
		{"paginas_esenciales", p.PaginasEsenciales},
		{"max_procesos", p.MaxProcesos},
		{"max_busquedas", p.MaxBusquedas},
	}
	for _, param := range positivos {
		if param.valor <= 0 {
			return fmt.Errorf("%w: %s debe ser positivo (%d)", ErrParametrosInvalidos, param.nombre, param.valor)
		}
	}

	if p.MarcosUsuario > p.MarcosTotales {
		return fmt.Errorf("%w: %d marcos de usuario sobre %d totales",
			ErrParametrosInvalidos, p.MarcosUsuario, p.MarcosTotales)
	}
	if p.PaginasEsenciales >= p.TamanioTablaPaginas {
		return fmt.Errorf("%w: las páginas esenciales no dejan lugar en la tabla", ErrParametrosInvalidos)
	}
	if p.PaginasEsenciales > p.MarcosUsuario {
		return fmt.Errorf("%w: las páginas esenciales no entran en memoria", ErrParametrosInvalidos)
	}
	return nil
}

// PaginaDeElemento traduce el índice de un elemento del arreglo a su página virtual.
// Las primeras PaginasEsenciales páginas quedan reservadas.
func (p Parametros) PaginaDeElemento(indice int) int {
	return indice*p.TamanioElemento/p.TamanioPagina + p.PaginasEsenciales
}

// MaxTamanioArreglo es la cantidad de elementos que entran en las páginas no esenciales
// de la tabla.
func (p Parametros) MaxTamanioArreglo() int {
	bytesUtiles := (p.TamanioTablaPaginas - p.PaginasEsenciales) * p.TamanioPagina
	return (bytesUtiles-1)/p.TamanioElemento + 1
}

// EntraEnTabla indica si todas las páginas de un arreglo caben en la tabla del proceso.
// El tamaño se compara antes de multiplicar para que un valor enorme no desborde.
func (p Parametros) EntraEnTabla(tamanioArreglo int) bool {
	return tamanioArreglo >= 1 && tamanioArreglo <= p.MaxTamanioArreglo()
}
