package router

import (
	"log"
	"net/http"

	"github.com/furnistore/api/internal/config"
	"github.com/furnistore/api/internal/database"
	"github.com/furnistore/api/internal/enum"
	"github.com/furnistore/api/internal/handler"
	"github.com/furnistore/api/internal/imagestore"
	mw "github.com/furnistore/api/internal/middleware"
	"github.com/furnistore/api/internal/service"
	"github.com/furnistore/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// New creates a Chi router with all application routes wired up.
// Applies authentication and role-based middleware as needed.
func New(cfg *config.Config, queries *database.Queries, pool *pgxpool.Pool, images *imagestore.Store, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // SvelteKit dev server
			"https://admin.furnistore.id",
			"https://stg-admin.furnistore.id",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Product images are public; URLs leak nothing beyond a UUID filename.
	fs := http.StripPrefix(imagestore.URLPrefix, http.FileServer(http.Dir(images.Dir())))
	r.Get(imagestore.URLPrefix+"*", fs.ServeHTTP)

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(queries, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		// Director-only routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleDirector))

			userHandler := handler.NewUserHandler(queries)
			r.Route("/users", userHandler.RegisterRoutes)

			dashboardHandler := handler.NewDashboardHandler(queries)
			r.Route("/dashboard", dashboardHandler.RegisterRoutes)
		})

		// Categories
		categoryHandler := handler.NewCategoryHandler(queries)
		r.Route("/categories", func(r chi.Router) {
			categoryHandler.RegisterReadRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(enum.UserRoleWarehouse))
				categoryHandler.RegisterWriteRoutes(r)
			})
		})

		// Products
		productHandler := handler.NewProductHandler(queries, images)
		r.Route("/products", func(r chi.Router) {
			productHandler.RegisterReadRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(enum.UserRoleWarehouse))
				productHandler.RegisterWriteRoutes(r)
			})
		})

		// Orders
		newOrderStore := func(db database.DBTX) service.OrderStore {
			return database.New(db)
		}
		orderService := service.NewOrderService(pool, newOrderStore)
		orderHandler := handler.NewOrderHandler(orderService, queries, hub)
		r.Route("/orders", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(enum.UserRoleSales, enum.UserRoleDirector))
				orderHandler.RegisterReadRoutes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(enum.UserRoleSales))
				orderHandler.RegisterWriteRoutes(r)
			})
		})

		// Customers
		customerHandler := handler.NewCustomerHandler(queries)
		r.Route("/customers", func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleSales, enum.UserRoleDirector))
			customerHandler.RegisterRoutes(r)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
