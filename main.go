package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripnest/catalog"
	"tripnest/db"
	"tripnest/favorites"
	"tripnest/globals"
	"tripnest/itinerary"
	"tripnest/ratelim"
	"tripnest/rdx"
	"tripnest/routes"
	"tripnest/search"
	"tripnest/storage"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func newBlob() storage.Blob {
	if rdx.Available() {
		return storage.NewRedisBlob()
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	blob, err := storage.NewFileBlob(dataDir)
	if err != nil {
		log.Fatalf("Cannot open data directory %s: %v", dataDir, err)
	}
	return blob
}

func setupRouter(cat *catalog.Catalog, favs *favorites.Store, itins *itinerary.Store, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		w.Write([]byte("200"))
	})

	routes.AddCatalogRoutes(router, catalog.NewHandler(cat, favs))
	routes.AddFavoritesRoutes(router, favorites.NewHandler(favs))
	routes.AddItineraryRoutes(router, itinerary.NewHandler(itins, cat))
	routes.AddSearchRoutes(router, search.NewHandler(search.NewKeywordRanker(), favs), rateLimiter)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rdx.Init()
	db.Connect()

	cat := catalog.New()
	cat.Load(context.Background())

	blob := newBlob()
	favs := favorites.NewStore(cat, blob)
	itins := itinerary.NewStore(blob)

	// Favorite mutations invalidate the cached decorated catalog.
	favs.Subscribe(func() {
		if rdx.Available() {
			rdx.RdxDel(globals.EntriesCacheKey)
		}
	})

	rateLimiter := ratelim.NewRateLimiter()
	router := setupRouter(cat, favs, itins, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	if db.Client != nil {
		db.Client.Disconnect(context.Background())
	}

	log.Println("Server stopped cleanly")
}
