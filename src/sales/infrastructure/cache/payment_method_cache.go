package cache

import (
	"database/sql"
	"log"
	"sync"

	"github.com/PaulGerman23/motoshopV2/src/sales/domain/entity"
)

// PaymentMethodCache cache en memoria del catálogo de métodos de pago.
// Arranca sembrado con los cinco métodos del POS y opcionalmente se
// pisa con el catálogo de payment_method_db.
type PaymentMethodCache struct {
	names map[entity.PaymentMethod]string
	mu    sync.RWMutex
}

// NewPaymentMethodCache crea el cache con los nombres por defecto
func NewPaymentMethodCache() *PaymentMethodCache {
	names := make(map[entity.PaymentMethod]string)
	for _, m := range entity.AllPaymentMethods() {
		names[m] = m.DisplayName()
	}
	return &PaymentMethodCache{names: names}
}

// LoadFromDB recarga los nombres legibles desde la base de catálogo.
// Solo pisa códigos que el POS conoce; un código desconocido se ignora
// con warning.
func (c *PaymentMethodCache) LoadFromDB(db *sql.DB) error {
	log.Println("🔄 Loading payment method catalog into cache...")

	query := `
		SELECT code, name
		FROM payment_methods
		WHERE is_active = true
	`

	rows, err := db.Query(query)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load payment methods: %v", err)
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var code, name string
		if err := rows.Scan(&code, &name); err != nil {
			log.Printf("⚠️  Error scanning payment method: %v", err)
			continue
		}

		method := entity.PaymentMethod(code)
		if !method.IsValid() {
			log.Printf("⚠️  Unknown payment method code in catalog: %s", code)
			continue
		}

		c.names[method] = name
		count++
	}

	log.Printf("✅ Loaded %d payment methods from catalog", count)
	return rows.Err()
}

// GetName obtiene el nombre legible de un método de pago
func (c *PaymentMethodCache) GetName(method entity.PaymentMethod) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.names[method]; ok {
		return name
	}
	return "Desconocido"
}
