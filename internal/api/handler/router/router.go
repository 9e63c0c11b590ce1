package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos desta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o router. Rotas desconhecidas e métodos não suportados
// respondem no mesmo formato de erro da API.
func New(configs ...ConfigRouter) Router {
	hr := httprouter.New()
	hr.HandleOPTIONS = false
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", nil)
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", nil)
	})

	router := &Router{router: hr}
	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		// Aplicar do último para o primeiro, para que o primeiro da lista execute antes
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
