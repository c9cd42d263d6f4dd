package router

import "net/http"

type BankRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func New(bankController BankRouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if bankController != nil {
		bankController.RegisterRoutes(mux)
	}

	return mux
}
