package repository

// StockViewRepository expone la vista de lectura optimizada sobre el libro:
// una sola consulta agregada que selecciona los ítems candidatos a bajo stock.
// El resumen completo de cada candidato se re-deriva después con el agregador.
type StockViewRepository interface {
	// ListLowStockItemIDs devuelve los ids de ítems cuyo stock derivado
	// (asientos completed) está en o por debajo de su umbral.
	ListLowStockItemIDs() ([]string, error)
}
