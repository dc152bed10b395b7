package planificadores

import (
	"errors"
	"fmt"
)

var ErrCapacidadExcedida = errors.New("capacidad excedida")

// ColaSwap es una cola circular acotada de PIDs suspendidos. Se readmite en el mismo
// orden en que se suspendió.
type ColaSwap struct {
	items    []int
	frente   int
	cantidad int
}

func NewColaSwap(capacidad int) *ColaSwap {
	return &ColaSwap{items: make([]int, capacidad)}
}

func (c *ColaSwap) Encolar(pid int) error {
	if c.cantidad == len(c.items) {
		return fmt.Errorf("encolando proceso %d en swap: %w", pid, ErrCapacidadExcedida)
	}
	c.items[(c.frente+c.cantidad)%len(c.items)] = pid
	c.cantidad++
	return nil
}

func (c *ColaSwap) Desencolar() (int, bool) {
	if c.cantidad == 0 {
		return 0, false
	}
	pid := c.items[c.frente]
	c.frente = (c.frente + 1) % len(c.items)
	c.cantidad--
	return pid, true
}

func (c *ColaSwap) Vacia() bool {
	return c.cantidad == 0
}

func (c *ColaSwap) Len() int {
	return c.cantidad
}

// Pendientes devuelve los PIDs en orden de readmisión.
func (c *ColaSwap) Pendientes() []int {
	pendientes := make([]int, 0, c.cantidad)
	for i := 0; i < c.cantidad; i++ {
		pendientes = append(pendientes, c.items[(c.frente+i)%len(c.items)])
	}
	return pendientes
}
