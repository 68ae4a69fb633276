package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	cartUseCase "github.com/PaulGerman23/motoshopV2/src/cart/application/usecase"
	cartController "github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/controller"
	cartStore "github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/store"
	"github.com/PaulGerman23/motoshopV2/src/cart/infrastructure/view"
	salesCache "github.com/PaulGerman23/motoshopV2/src/sales/infrastructure/cache"
	sharedConfig "github.com/PaulGerman23/motoshopV2/src/shared/infrastructure/config"
	ticketUseCase "github.com/PaulGerman23/motoshopV2/src/ticket/application/usecase"
	ticketClient "github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/client"
	ticketController "github.com/PaulGerman23/motoshopV2/src/ticket/infrastructure/controller"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	// Variables de entorno desde .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables del entorno")
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	log.Printf("PROMETHEUS_ENABLED value: '%s'", prometheusEnabled)

	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("/metrics endpoint registered successfully for POS service")
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Configurar CORS, sesión y CSRF compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Conectar a payment_method_db para el cache de métodos de pago
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	pmDBName := getEnv("PAYMENT_METHOD_DB_NAME", "payment_method_db")

	pmConnStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + pmDBName + "?sslmode=disable"
	log.Printf("Intentando conectar a payment_method_db: %s", pmConnStr)

	paymentMethodDB, err := sql.Open("postgres", pmConnStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a payment_method_db: %v", err)
		log.Println("⚠️  Continuando con los nombres de métodos de pago por defecto")
		paymentMethodDB = nil
	} else {
		defer paymentMethodDB.Close()
		if err := paymentMethodDB.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar conexión a payment_method_db: %v", err)
			log.Println("⚠️  Continuando con los nombres de métodos de pago por defecto")
			paymentMethodDB = nil
		} else {
			log.Println("✅ Conexión a payment_method_db establecida con éxito")
		}
	}

	// Health checks
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "pos-service"})
	}
	router.GET("/health", healthHandler)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler)

	// Configurar módulo POS (carrito + tickets)
	setupPOSModule(v1, paymentMethodDB)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor POS Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupPOSModule configura el módulo POS: carrito por sesión, cliente
// del ticket store y cache de métodos de pago
func setupPOSModule(router *gin.RouterGroup, paymentMethodDB *sql.DB) {
	log.Println("Configurando módulo POS...")

	// Estado en memoria: un carrito por sesión
	sessionStore := cartStore.NewSessionStore()

	// Renderer de fragmentos HTML (carrito y listado de tickets)
	renderer := view.NewRenderer()

	// Cliente del ticket store remoto
	tickets := ticketClient.NewTicketClient()

	// Cache de métodos de pago: arranca con los nombres por defecto y
	// se pisa desde la DB si hay conexión
	pmCache := salesCache.NewPaymentMethodCache()
	if paymentMethodDB != nil {
		if err := pmCache.LoadFromDB(paymentMethodDB); err != nil {
			log.Printf("⚠️  Warning: Could not load payment methods cache: %v", err)
		}
	} else {
		log.Println("⚠️  Payment method cache con nombres por defecto (no DB connection)")
	}

	// Casos de uso del carrito
	getCartUC := cartUseCase.NewGetCartUseCase(sessionStore, renderer)
	addItemUC := cartUseCase.NewAddItemUseCase(sessionStore, renderer)
	setQuantityUC := cartUseCase.NewSetQuantityUseCase(sessionStore, renderer)
	removeItemUC := cartUseCase.NewRemoveItemUseCase(sessionStore, renderer)
	clearCartUC := cartUseCase.NewClearCartUseCase(sessionStore, renderer)
	applyDiscountUC := cartUseCase.NewApplyDiscountUseCase(sessionStore, renderer)
	removeDiscountUC := cartUseCase.NewRemoveDiscountUseCase(sessionStore, renderer)
	validateSaleUC := cartUseCase.NewValidateSaleUseCase(sessionStore)

	// Casos de uso de tickets
	saveTicketUC := ticketUseCase.NewSaveTicketUseCase(sessionStore, tickets, renderer)
	listTicketsUC := ticketUseCase.NewListTicketsUseCase(tickets, renderer)
	recoverTicketUC := ticketUseCase.NewRecoverTicketUseCase(sessionStore, tickets, renderer)
	cancelTicketUC := ticketUseCase.NewCancelTicketUseCase(sessionStore, tickets)
	finalizeTicketUC := ticketUseCase.NewFinalizeTicketUseCase(sessionStore, tickets, pmCache)

	// Crear controladores
	cartCtrl := cartController.NewCartController(
		getCartUC, addItemUC, setQuantityUC, removeItemUC,
		clearCartUC, applyDiscountUC, removeDiscountUC, validateSaleUC,
	)
	ticketCtrl := ticketController.NewTicketController(
		saveTicketUC, listTicketsUC, recoverTicketUC, cancelTicketUC, finalizeTicketUC,
	)

	// Registrar rutas
	cartCtrl.RegisterRoutes(router)
	ticketCtrl.RegisterRoutes(router)

	log.Println("Módulo POS configurado exitosamente")
}
