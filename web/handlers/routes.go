package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bistroworks/bistro-server/web/auth"
)

// RegisterRoutes wires every route with its guards. Guards compose in
// order: Authenticate always runs before RequireAdmin.
func (g *HandlerGroup) RegisterRoutes(router *mux.Router, am *auth.AuthMiddleware) {
	authed := func(h http.HandlerFunc) http.Handler {
		return am.Authenticate(h)
	}
	admin := func(h http.HandlerFunc) http.Handler {
		return am.Authenticate(am.RequireAdmin(h))
	}

	router.HandleFunc("/", g.Web.Index).Methods(http.MethodGet)
	router.HandleFunc("/jwt", g.Token.Issue).Methods(http.MethodPost)

	router.Handle("/users", admin(g.Users.List)).Methods(http.MethodGet)
	router.HandleFunc("/users", g.Users.Create).Methods(http.MethodPost)
	router.Handle("/users/admin/{email}", authed(g.Users.CheckAdmin)).Methods(http.MethodGet)
	router.Handle("/users/admin/{id}", admin(g.Users.Promote)).Methods(http.MethodPatch)

	router.HandleFunc("/menu", g.Menu.List).Methods(http.MethodGet)
	router.Handle("/menu", admin(g.Menu.Create)).Methods(http.MethodPost)
	router.Handle("/menu/{id}", admin(g.Menu.Delete)).Methods(http.MethodDelete)

	router.HandleFunc("/reviews", g.Reviews.List).Methods(http.MethodGet)

	router.Handle("/carts", authed(g.Carts.List)).Methods(http.MethodGet)
	router.HandleFunc("/carts", g.Carts.Create).Methods(http.MethodPost)
	router.HandleFunc("/carts/{id}", g.Carts.Delete).Methods(http.MethodDelete)

	router.Handle("/create-payment-intent", authed(g.Payments.CreatePaymentIntent)).Methods(http.MethodPost)
	router.Handle("/payments", authed(g.Payments.Settle)).Methods(http.MethodPost)

	router.Handle("/admin-stats", admin(g.Stats.AdminStats)).Methods(http.MethodGet)
	router.Handle("/order-stats", admin(g.Stats.OrderStats)).Methods(http.MethodGet)
}
