package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Misa55555/stockpro-api/internal/application/dto"
)

// StockExporter genera la planilla de inventario en formato xlsx para
// control físico: una fila por producto con stock, mínimo y precio vigente.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter {
	return &StockExporter{}
}

// Export arma el archivo en memoria y devuelve los bytes listos para servir.
func (e *StockExporter) Export(products []dto.ProductResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inventario"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Producto", "Código de barras", "Unidad", "Stock", "Stock mínimo", "Precio", "Stock bajo"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for row, p := range products {
		lowStock := ""
		if p.LowStock {
			lowStock = "SÍ"
		}
		values := []any{
			p.Name, p.Barcode, p.Unit,
			p.Stock.String(), p.MinStock.String(), p.Price.String(),
			lowStock,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", row+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("generar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
