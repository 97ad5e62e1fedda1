package rest

import "net/http"

// NewRouter registers all REST routes on a fresh ServeMux.
func NewRouter(authH *AuthHandler, contactH *ContactHandler, healthH *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)

	mux.HandleFunc("POST /auth/login", authH.Login)
	mux.HandleFunc("POST /auth/refresh", authH.Refresh)
	mux.HandleFunc("POST /auth/logout", authH.Logout)

	mux.HandleFunc("POST /api/format", contactH.Format)
	mux.HandleFunc("GET /api/countries", contactH.Countries)
	mux.HandleFunc("POST /api/messages", contactH.Save)
	mux.HandleFunc("GET /api/messages", contactH.List)
	mux.HandleFunc("PATCH /api/messages/{id}", contactH.Update)
	mux.HandleFunc("DELETE /api/messages/{id}", contactH.Delete)

	return mux
}
