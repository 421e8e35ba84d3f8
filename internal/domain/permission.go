package domain

// Operaciones del núcleo sujetas a control por rol.
const (
	OpCatalogRead   = "catalog:read"
	OpCatalogWrite  = "catalog:write"
	OpRecordSale    = "sales:record"
	OpRegisterCash  = "register:operate" // abrir/cerrar caja y movimientos manuales
	OpFinance       = "finance:manage"
	OpDashboardView = "dashboard:view"
	OpStockExport   = "stock:export"
)

// permisos por rol. El rol cliente existe en el esquema pero no tiene
// operaciones habilitadas: todo acceso al núcleo se le niega.
var permissions = map[string]map[string]bool{
	"admin": {
		OpCatalogRead:   true,
		OpCatalogWrite:  true,
		OpRecordSale:    true,
		OpRegisterCash:  true,
		OpFinance:       true,
		OpDashboardView: true,
		OpStockExport:   true,
	},
	"vendedor": {
		OpCatalogRead:   true,
		OpRecordSale:    true,
		OpRegisterCash:  true,
		OpDashboardView: true,
	},
}

// HasPermission indica si un rol puede ejecutar una operación.
// Función pura: los casos de uso la consultan antes de tocar repositorios.
func HasPermission(role, operation string) bool {
	ops, ok := permissions[role]
	if !ok {
		return false
	}
	return ops[operation]
}
