package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrCargaInvalida = errors.New("carga de trabajo inválida")

type DescriptorProceso struct {
	TamanioArreglo int   `json:"tamanio_arreglo"`
	Busquedas      []int `json:"busquedas"`
}

type Carga struct {
	BusquedasPorProceso int                 `json:"busquedas_por_proceso"`
	Procesos            []DescriptorProceso `json:"procesos"`
}

// LeerCarga interpreta el archivo de búsquedas: una línea con la cantidad de procesos y
// de búsquedas por proceso, y luego, por proceso, el tamaño del arreglo seguido de sus
// claves. Los valores se separan por cualquier espacio en blanco.
func LeerCarga(r io.Reader, params Parametros) (*Carga, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	cantidadProcesos, err := siguienteEntero(scanner, "cantidad de procesos")
	if err != nil {
		return nil, err
	}
	busquedas, err := siguienteEntero(scanner, "cantidad de búsquedas")
	if err != nil {
		return nil, err
	}

	if cantidadProcesos < 1 || cantidadProcesos > params.MaxProcesos {
		return nil, fmt.Errorf("%w: cantidad de procesos %d fuera de [1, %d]",
			ErrCargaInvalida, cantidadProcesos, params.MaxProcesos)
	}
	if busquedas < 1 || busquedas > params.MaxBusquedas {
		return nil, fmt.Errorf("%w: cantidad de búsquedas %d fuera de [1, %d]",
			ErrCargaInvalida, busquedas, params.MaxBusquedas)
	}

	carga := &Carga{
		BusquedasPorProceso: busquedas,
		Procesos:            make([]DescriptorProceso, 0, cantidadProcesos),
	}

	for pid := 0; pid < cantidadProcesos; pid++ {
		tamanio, err := siguienteEntero(scanner, fmt.Sprintf("tamaño del arreglo del proceso %d", pid))
		if err != nil {
			return nil, err
		}
		if tamanio < 1 {
			return nil, fmt.Errorf("%w: el proceso %d tiene un arreglo de tamaño %d",
				ErrCargaInvalida, pid, tamanio)
		}
		if !params.EntraEnTabla(tamanio) {
			return nil, fmt.Errorf("%w: el arreglo del proceso %d (%d elementos) excede la tabla de páginas",
				ErrCargaInvalida, pid, tamanio)
		}

		claves := make([]int, busquedas)
		for j := range claves {
			claves[j], err = siguienteEntero(scanner, fmt.Sprintf("búsqueda %d del proceso %d", j, pid))
			if err != nil {
				return nil, err
			}
		}

		carga.Procesos = append(carga.Procesos, DescriptorProceso{
			TamanioArreglo: tamanio,
			Busquedas:      claves,
		})
	}

	return carga, nil
}

func siguienteEntero(scanner *bufio.Scanner, que string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("leyendo %s: %w", que, err)
		}
		return 0, fmt.Errorf("%w: falta %s", ErrCargaInvalida, que)
	}

	valor, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %s no es un entero (%q)", ErrCargaInvalida, que, scanner.Text())
	}
	return valor, nil
}
