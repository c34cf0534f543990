package http

import (
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	websocketTransport "github.com/paklog/product-catalog/internal/transport/websocket"
)

func NewRouter(
	ph *ProductHandler,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(logger)

	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	router.HandleFunc("/health", ph.Health).Methods("GET")
	router.HandleFunc("/products", ph.ListProducts).Methods("GET")
	router.HandleFunc("/products", ph.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{sku}", ph.GetProduct).Methods("GET")
	router.HandleFunc("/products/{sku}", ph.UpdateProduct).Methods("PUT")
	router.HandleFunc("/products/{sku}", ph.PatchProduct).Methods("PATCH")
	router.HandleFunc("/products/{sku}", ph.DeleteProduct).Methods("DELETE")
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods("GET")

	// Serve the OpenAPI document with a Redoc UI on top of it
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "swagger.yaml")
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return cors(router)
}
