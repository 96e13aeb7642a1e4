package i18n

var messagesES = map[string]string{
	"app.title": "StockWise",

	"summary.title":         "Resumen del Inventario",
	"summary.subtitle":      "Gestiona tus materiales eficientemente.",
	"summary.totalItems":    "Total de Artículos Únicos",
	"summary.totalQuantity": "Cantidad Total",
	"summary.lowStock":      "Artículos con Stock Bajo",

	"lowstock.title": "¡Alerta de Stock Bajo!",
	"lowstock.body":  "Los siguientes artículos se están agotando: %s. Considera reordenar pronto.",

	"search.placeholder":  "Buscar materiales...",
	"action.add":          "Agregar Nuevo Material",
	"action.download":     "Descargar Inventario",
	"action.downloadXLSX": "Descargar Excel",

	"table.name":        "Nombre",
	"table.description": "Descripción",
	"table.quantity":    "Cant.",
	"table.purchased":   "Comprado",
	"table.threshold":   "Umbral",
	"table.actions":     "Acciones",
	"table.edit":        "Editar material",
	"table.delete":      "Eliminar material",

	"empty.title": "Aún no hay materiales",
	"empty.body":  "Tu inventario está actualmente vacío.",
	"empty.hint":  "Haz clic en el botón \"Agregar Nuevo Material\" para comenzar.",

	"noresults.body": "No se encontraron materiales para \"%s\".",
	"noresults.hint": "Intenta ajustar tus términos de búsqueda.",

	"tooltip.lowstock": "¡Stock bajo! Cantidad: %d, Umbral: %d",

	"form.title.add":               "Agregar Nuevo Material",
	"form.title.edit":              "Editar Material",
	"form.subtitle.add":            "Completa los datos del nuevo material.",
	"form.subtitle.edit":           "Actualiza los datos del material.",
	"form.name":                    "Nombre",
	"form.name.placeholder":        "p. ej., Tornillos, Tablones de Madera",
	"form.description":             "Descripción (Opcional)",
	"form.description.placeholder": "p. ej., Acero inoxidable de 5cm, Roble 2x4x8",
	"form.quantity":                "Cantidad",
	"form.threshold":               "Umbral de Stock Bajo",
	"form.date":                    "Fecha de Compra",
	"form.submit.add":              "Agregar Material",
	"form.submit.edit":             "Guardar Cambios",
	"form.cancel":                  "Cancelar",

	"val.name.required":   "El nombre es obligatorio",
	"val.name.max":        "El nombre debe tener 100 caracteres o menos",
	"val.description.max": "La descripción debe tener 500 caracteres o menos",
	"val.quantity.int":    "La cantidad debe ser un número entero",
	"val.quantity.min":    "La cantidad no puede ser negativa",
	"val.threshold.int":   "El umbral debe ser un número entero",
	"val.threshold.min":   "El umbral no puede ser negativo",
	"val.date.required":   "La fecha de compra es obligatoria.",
	"val.date.invalid":    "La fecha de compra no es válida",
	"val.date.range":      "La fecha debe estar entre el 01-01-1900 y hoy",

	"delete.title":   "¿Estás absolutamente seguro?",
	"delete.body":    "Esta acción no se puede deshacer. Esto eliminará permanentemente %s de tu inventario.",
	"delete.confirm": "Sí, eliminar",
	"delete.cancel":  "Cancelar",

	"toast.added.title":    "Material Agregado",
	"toast.added.body":     "%s ha sido agregado al inventario.",
	"toast.updated.title":  "Material Actualizado",
	"toast.updated.body":   "%s ha sido actualizado.",
	"toast.deleted.title":  "Material Eliminado",
	"toast.deleted.body":   "%s ha sido eliminado del inventario.",
	"toast.empty.title":    "Inventario Vacío",
	"toast.empty.body":     "No hay materiales para descargar.",
	"toast.download.title": "Descarga Iniciada",
	"toast.download.body":  "El archivo del inventario se está descargando.",
	"toast.savefailed":     "No se pudo guardar el inventario; los cambios siguen en memoria.",

	"csv.id":          "ID",
	"csv.name":        "Nombre",
	"csv.description": "Descripción",
	"csv.quantity":    "Cantidad",
	"csv.date":        "Fecha de Compra",
	"csv.threshold":   "Umbral de Stock Bajo",

	"export.prefix": "inventario_stockwise",

	"notify.lowstock": "⚠️ Stock bajo:\n%s",
	"notify.item":     "— %s (cantidad: %d, umbral: %d)",
}

var messagesEN = map[string]string{
	"app.title": "StockWise",

	"summary.title":         "Inventory Summary",
	"summary.subtitle":      "Manage your materials efficiently.",
	"summary.totalItems":    "Total Unique Items",
	"summary.totalQuantity": "Total Quantity",
	"summary.lowStock":      "Low Stock Items",

	"lowstock.title": "Low Stock Alert!",
	"lowstock.body":  "The following item(s) are running low: %s. Consider reordering soon.",

	"search.placeholder":  "Search materials...",
	"action.add":          "Add New Material",
	"action.download":     "Download Inventory",
	"action.downloadXLSX": "Download Excel",

	"table.name":        "Name",
	"table.description": "Description",
	"table.quantity":    "Qty",
	"table.purchased":   "Purchased",
	"table.threshold":   "Threshold",
	"table.actions":     "Actions",
	"table.edit":        "Edit material",
	"table.delete":      "Delete material",

	"empty.title": "No materials yet",
	"empty.body":  "Your inventory is currently empty.",
	"empty.hint":  "Click the \"Add New Material\" button to get started.",

	"noresults.body": "No materials found for \"%s\".",
	"noresults.hint": "Try adjusting your search terms.",

	"tooltip.lowstock": "Low stock! Quantity: %d, Threshold: %d",

	"form.title.add":               "Add New Material",
	"form.title.edit":              "Edit Material",
	"form.subtitle.add":            "Fill in the details for the new material.",
	"form.subtitle.edit":           "Update the details of the material.",
	"form.name":                    "Name",
	"form.name.placeholder":        "e.g., Screws, Wood Planks",
	"form.description":             "Description (Optional)",
	"form.description.placeholder": "e.g., 5cm stainless steel, Oak wood 2x4x8",
	"form.quantity":                "Quantity",
	"form.threshold":               "Low Stock Threshold",
	"form.date":                    "Purchase Date",
	"form.submit.add":              "Add Material",
	"form.submit.edit":             "Save Changes",
	"form.cancel":                  "Cancel",

	"val.name.required":   "Name is required",
	"val.name.max":        "Name must be 100 characters or less",
	"val.description.max": "Description must be 500 characters or less",
	"val.quantity.int":    "Quantity must be a whole number",
	"val.quantity.min":    "Quantity cannot be negative",
	"val.threshold.int":   "Threshold must be a whole number",
	"val.threshold.min":   "Threshold cannot be negative",
	"val.date.required":   "Purchase date is required.",
	"val.date.invalid":    "Purchase date is not a valid date",
	"val.date.range":      "Date must be between 1900-01-01 and today",

	"delete.title":   "Are you absolutely sure?",
	"delete.body":    "This action cannot be undone. This will permanently delete %s from your inventory.",
	"delete.confirm": "Yes, delete",
	"delete.cancel":  "Cancel",

	"toast.added.title":    "Material Added",
	"toast.added.body":     "%s has been added to the inventory.",
	"toast.updated.title":  "Material Updated",
	"toast.updated.body":   "%s has been updated.",
	"toast.deleted.title":  "Material Deleted",
	"toast.deleted.body":   "%s has been removed from the inventory.",
	"toast.empty.title":    "Empty Inventory",
	"toast.empty.body":     "There are no materials to download.",
	"toast.download.title": "Download Started",
	"toast.download.body":  "The inventory file is downloading.",
	"toast.savefailed":     "The inventory could not be saved; changes are kept in memory.",

	"csv.id":          "ID",
	"csv.name":        "Name",
	"csv.description": "Description",
	"csv.quantity":    "Quantity",
	"csv.date":        "Purchase Date",
	"csv.threshold":   "Low Stock Threshold",

	"export.prefix": "stockwise_inventory",

	"notify.lowstock": "⚠️ Low stock:\n%s",
	"notify.item":     "— %s (quantity: %d, threshold: %d)",
}
