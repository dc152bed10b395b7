package memoria

import (
	"errors"
	"fmt"
)

var (
	ErrSinMarcosLibres = errors.New("no hay marcos libres disponibles")
	ErrMarcoInvalido   = errors.New("marco fuera de rango")
	ErrMarcoLibre      = errors.New("el marco no está asignado")
)

// Marco es el índice de un frame físico asignable a procesos de usuario.
type Marco int

// Marcos es el pool de frames de usuario. Los libres se guardan en una pila, así que
// el último marco liberado es el próximo en asignarse.
type Marcos struct {
	libres    []Marco
	asignados []bool
}

// NewMarcos crea el pool con los marcos [0, total) libres.
func NewMarcos(total int) *Marcos {
	m := &Marcos{
		libres:    make([]Marco, total),
		asignados: make([]bool, total),
	}
	for i := range m.libres {
		m.libres[i] = Marco(i)
	}
	return m
}

// Asignar saca un marco de la pila de libres.
func (m *Marcos) Asignar() (Marco, error) {
	if len(m.libres) == 0 {
		return 0, ErrSinMarcosLibres
	}

	marco := m.libres[len(m.libres)-1]
	m.libres = m.libres[:len(m.libres)-1]
	m.asignados[marco] = true
	return marco, nil
}

// Liberar devuelve el marco al pool. Falla si el marco no existe o ya estaba libre.
func (m *Marcos) Liberar(marco Marco) error {
	if int(marco) < 0 || int(marco) >= len(m.asignados) {
		return fmt.Errorf("liberando marco %d: %w", marco, ErrMarcoInvalido)
	}
	if !m.asignados[marco] {
		return fmt.Errorf("liberando marco %d: %w", marco, ErrMarcoLibre)
	}

	m.asignados[marco] = false
	m.libres = append(m.libres, marco)
	return nil
}

func (m *Marcos) Libres() int {
	return len(m.libres)
}

func (m *Marcos) Total() int {
	return len(m.asignados)
}

func (m *Marcos) EstaAsignado(marco Marco) bool {
	if int(marco) < 0 || int(marco) >= len(m.asignados) {
		return false
	}
	return m.asignados[marco]
}
