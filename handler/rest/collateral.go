package rest

import (
	"net/http"

	"lendbook/core"
	"lendbook/handler/param"
	"lendbook/handler/render"
	"lendbook/handler/views"
	"lendbook/pkg/number"
	"lendbook/service/lending"

	"github.com/twitchtv/twirp"
)

func collateralHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash, err := param.Hash(r, "hash")
		if err != nil {
			render.Error(w, err)
			return
		}

		c, err := module.Collateral(r.Context(), param.String(r, "account"), hash)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.CollateralView(c))
	}
}

func addCollateralHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Account string       `json:"account" valid:"required"`
			Amount  string       `json:"amount" valid:"required"`
			Asset   core.AssetID `json:"asset" valid:"required"`
			OrderID core.Hash    `json:"order_id"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := number.Parse(params.Amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		hash, err := module.AddCollateral(r.Context(), caller(r), params.Account, amount, params.Asset, params.OrderID)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"hash": hash})
	}
}

func collateralActionHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hash, err := param.Hash(r, "hash")
		if err != nil {
			render.Error(w, err)
			return
		}

		ctx, account := r.Context(), param.String(r, "account")

		switch param.String(r, "action") {
		case "hot":
			err = module.MakeCollateralHot(ctx, caller(r), account, hash)
		case "fill":
			err = module.FillCollateral(ctx, caller(r), account, hash)
		case "cancel":
			err = module.CancelCollateral(ctx, caller(r), account, hash)
		case "remove":
			err = module.RemoveCollateral(ctx, caller(r), account, hash)
		default:
			err = twirp.NotFoundError("unknown collateral action")
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}
