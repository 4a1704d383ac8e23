package rest

import (
	"errors"
	"net/http"

	"lendbook/handler/auth"
	"lendbook/handler/render"
	"lendbook/handler/request"
	"lendbook/service/lending"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(module *lending.Module) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/assets/{id}", assetHandler(module))
	router.Get("/balances/{asset}/{account}", balanceHandler(module))
	router.Get("/allowances/{asset}/{owner}/{spender}", allowanceHandler(module))
	router.Get("/prices/{asset}", priceHandler(module))
	router.Get("/collaterals/{account}/{hash}", collateralHandler(module))
	router.Get("/borrows/{id}", borrowHandler(module))
	router.Get("/borrows", borrowsHandler(module))
	router.Get("/supplies/{id}", supplyHandler(module))
	router.Get("/supplies", suppliesHandler(module))

	router.Group(func(r chi.Router) {
		r.Use(auth.LoginRequired)

		r.Post("/assets", initAssetHandler(module))
		r.Post("/transfers", transferHandler(module))
		r.Post("/approvals", approveHandler(module))
		r.Post("/transfer-from", transferFromHandler(module))
		r.Post("/reserves", reserveHandler(module))
		r.Post("/unreserves", unreserveHandler(module))
		r.Post("/prices", setPriceHandler(module))
		r.Post("/collaterals", addCollateralHandler(module))
		r.Post("/collaterals/{account}/{hash}/{action}", collateralActionHandler(module))
		r.Post("/borrows", createBorrowHandler(module))
		r.Post("/borrows/{id}/cancel", cancelBorrowHandler(module))
		r.Post("/supplies", createSupplyHandler(module))
		r.Post("/supplies/{id}/cancel", cancelSupplyHandler(module))
	})

	return router
}

func caller(r *http.Request) string {
	account, _ := request.NewContext(r.Context()).GetAccount()
	return account
}

// ok render an empty success body
func ok(w http.ResponseWriter) {
	render.JSON(w, render.H{})
}
