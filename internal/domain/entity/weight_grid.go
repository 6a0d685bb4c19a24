package entity

import (
	"encoding/json"
	"fmt"
)

// Dimensiones de la planilla de pesadas.
const (
	WeightGridRows = 7
	WeightGridCols = 6
)

// WeightGrid planilla de pesadas físicas de una factura: 7 filas de 6 celdas, cada celda un número
// o nil (sin pesada). Se guarda como texto y se relee tal cual; la forma no se valida.
type WeightGrid [][]*float64

// EmptyWeightGrid devuelve una planilla 7×6 sin pesadas.
func EmptyWeightGrid() WeightGrid {
	grid := make(WeightGrid, WeightGridRows)
	for i := range grid {
		grid[i] = make([]*float64, WeightGridCols)
	}
	return grid
}

// EncodeWeightGrid serializa la planilla a texto JSON (celdas vacías como null).
func EncodeWeightGrid(g WeightGrid) (string, error) {
	if g == nil {
		g = EmptyWeightGrid()
	}
	b, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("encode weight grid: %w", err)
	}
	return string(b), nil
}

// DecodeWeightGrid parsea el texto guardado por EncodeWeightGrid.
func DecodeWeightGrid(s string) (WeightGrid, error) {
	if s == "" {
		return EmptyWeightGrid(), nil
	}
	var g WeightGrid
	if err := json.Unmarshal([]byte(s), &g); err != nil {
		return nil, fmt.Errorf("decode weight grid: %w", err)
	}
	return g, nil
}

// EncodeWeightList serializa la lista de pesadas de una línea; vacía se guarda como "".
func EncodeWeightList(list []float64) (string, error) {
	if len(list) == 0 {
		return "", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode weight list: %w", err)
	}
	return string(b), nil
}

// DecodeWeightList parsea el texto guardado por EncodeWeightList.
func DecodeWeightList(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	var list []float64
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return nil, fmt.Errorf("decode weight list: %w", err)
	}
	return list, nil
}
