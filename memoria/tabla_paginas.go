package memoria

import (
	"errors"
	"fmt"
)

var (
	ErrPaginaInvalida = errors.New("página fuera de la tabla")
	ErrPaginaPresente = errors.New("la página ya tiene un marco asignado")
)

// EntradaTabla asocia una página virtual con un marco. Marco solo tiene sentido si Presente.
type EntradaTabla struct {
	Marco    Marco
	Presente bool
}

// TablaDePaginas es la tabla de un nivel de un proceso. Lleva la cuenta de los marcos
// que tiene asignados para no recorrer las entradas en cada consulta.
type TablaDePaginas struct {
	Entradas  []EntradaTabla
	asignados int
}

func NewTablaDePaginas(tamanio int) *TablaDePaginas {
	return &TablaDePaginas{
		Entradas: make([]EntradaTabla, tamanio),
	}
}

// Traducir devuelve el marco de la página, o false si la página no está residente.
func (t *TablaDePaginas) Traducir(pagina int) (Marco, bool) {
	if pagina < 0 || pagina >= len(t.Entradas) {
		return 0, false
	}
	entrada := t.Entradas[pagina]
	return entrada.Marco, entrada.Presente
}

func (t *TablaDePaginas) Instalar(pagina int, marco Marco) error {
	if pagina < 0 || pagina >= len(t.Entradas) {
		return fmt.Errorf("instalando página %d: %w", pagina, ErrPaginaInvalida)
	}
	if t.Entradas[pagina].Presente {
		return fmt.Errorf("instalando página %d: %w", pagina, ErrPaginaPresente)
	}

	t.Entradas[pagina] = EntradaTabla{Marco: marco, Presente: true}
	t.asignados++
	return nil
}

// Limpiar devuelve al pool todos los marcos de la tabla y la deja vacía. Si un marco no
// se puede liberar se corta ahí; las páginas ya liberadas quedan fuera de la cuenta.
func (t *TablaDePaginas) Limpiar(marcos *Marcos) error {
	for i, entrada := range t.Entradas {
		if !entrada.Presente {
			continue
		}
		if err := marcos.Liberar(entrada.Marco); err != nil {
			return fmt.Errorf("limpiando página %d: %w", i, err)
		}
		t.Entradas[i] = EntradaTabla{}
		t.asignados--
	}
	return nil
}

func (t *TablaDePaginas) MarcosAsignados() int {
	return t.asignados
}

// Residentes lista los marcos de las páginas presentes, en orden de página.
func (t *TablaDePaginas) Residentes() []Marco {
	residentes := make([]Marco, 0, t.asignados)
	for _, entrada := range t.Entradas {
		if entrada.Presente {
			residentes = append(residentes, entrada.Marco)
		}
	}
	return residentes
}

func (t *TablaDePaginas) Tamanio() int {
	return len(t.Entradas)
}
