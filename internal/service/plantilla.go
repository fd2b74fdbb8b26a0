package service

import (
	"github.com/shopspring/decimal"

	"github.com/chars222/lista-compras/internal/model"
)

// plantillaBase is the built-in starter lista: the weekly staples of the
// household this app grew up in. Everything starts unchecked and without
// price; prices only appear while shopping.
func plantillaBase() []model.Item {
	def := func(nombre string, cat model.Categoria, cantidad, unidad string) model.Item {
		return model.Item{
			Nombre:         nombre,
			Categoria:      cat,
			Cantidad:       decimal.RequireFromString(cantidad),
			Unidad:         unidad,
			Comprado:       false,
			PrecioUnitario: decimal.Zero,
		}
	}
	return []model.Item{
		def("Tomates", model.CategoriaVerduras, "1", "kg"),
		def("Cebollas", model.CategoriaVerduras, "3", "lb (Libra)"),
		def("Papa harinosa", model.CategoriaVerduras, "6", "lb (Libra)"),
		def("Papa holandesa", model.CategoriaVerduras, "3", "lb (Libra)"),
		def("Plátano", model.CategoriaVerduras, "6", "U (Unidad)"),
		def("Zapallo", model.CategoriaVerduras, "0.5", "kg"),
		def("Lechuga carola", model.CategoriaVerduras, "2", "U (Unidad)"),
		def("Brócoli", model.CategoriaVerduras, "1", "U (Unidad)"),
		def("Espinaca", model.CategoriaVerduras, "2", "U (Unidad)"),
		def("Choclo", model.CategoriaVerduras, "6", "U (Unidad)"),
		def("Guineo", model.CategoriaFrutas, "6", "U (Unidad)"),
		def("Manzana", model.CategoriaFrutas, "4", "U (Unidad)"),
		def("Pera", model.CategoriaFrutas, "3", "U (Unidad)"),
		def("Limón cambita", model.CategoriaFrutas, "10", "U (Unidad)"),
		def("Limón de licuar", model.CategoriaFrutas, "10", "U (Unidad)"),
		def("Piña", model.CategoriaFrutas, "1", "U (Unidad)"),
		def("Arándanos", model.CategoriaFrutas, "1", "U (Unidad)"),
		def("Frutillas", model.CategoriaFrutas, "1", "U (Unidad)"),
		def("Pollo", model.CategoriaCarnes, "2", "U (Unidad)"),
		def("Pollo (Pechuga)", model.CategoriaCarnes, "1", "U (Unidad)"),
		def("Bollo chico", model.CategoriaCarnes, "1", "kg"),
		def("Arroz", model.CategoriaAbarrotes, "1", "kg"),
		def("Huevo maple", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Queso", model.CategoriaAbarrotes, "0.5", "kg"),
		def("Fideo codito", model.CategoriaAbarrotes, "1", "kg"),
		def("Fideo espiral", model.CategoriaAbarrotes, "1", "kg"),
		def("Papel higiénico 24", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Servilleta mesa", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Servilleta cocina", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Ajo cabeza", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Quinua", model.CategoriaAbarrotes, "0.5", "kg"),
		def("Azúcar morena", model.CategoriaAbarrotes, "1", "kg"),
		def("Azúcar blanca", model.CategoriaAbarrotes, "1", "kg"),
		def("Té de frutas pack", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Té de canela pack", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Té de manzanilla pack", model.CategoriaAbarrotes, "1", "U (Unidad)"),
		def("Agua bebé", model.CategoriaAbarrotes, "3", "L (Litro)"),
		def("Detergente ropa adultos", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Detergente ropa bebé", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Lavavajillas", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Lavandina", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Trapo de piso", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Jaboncillo adulto", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Jaboncillo bebé", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Pañal bebé pack", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Bolsa de basura grande pack", model.CategoriaLimpieza, "1", "U (Unidad)"),
		def("Pan francés", model.CategoriaOtros, "5", "U (Unidad)"),
	}
}
