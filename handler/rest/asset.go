package rest

import (
	"net/http"

	"lendbook/core"
	"lendbook/handler/param"
	"lendbook/handler/render"
	"lendbook/handler/views"
	"lendbook/pkg/number"
	"lendbook/service/lending"
)

func assetHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := param.AssetID(r, "id")
		if err != nil {
			render.Error(w, err)
			return
		}

		asset, err := module.Asset(r.Context(), id)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.AssetView(asset))
	}
}

func initAssetHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Name        string `json:"name" valid:"required"`
			Ticker      string `json:"ticker" valid:"required"`
			TotalSupply string `json:"total_supply" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		supply, err := number.Parse(params.TotalSupply)
		if err != nil {
			render.Error(w, err)
			return
		}

		id, err := module.InitAsset(r.Context(), caller(r), params.Name, params.Ticker, supply)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"id": id})
	}
}

func priceHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := param.AssetID(r, "asset")
		if err != nil {
			render.Error(w, err)
			return
		}

		price, err := module.Price(r.Context(), asset)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Price{
			Asset: asset,
			Value: number.String(price),
			Rate:  number.Decimal(price, 4),
		})
	}
}

func setPriceHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Asset core.AssetID `json:"asset" valid:"required"`
			Price string       `json:"price" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		price, err := number.Parse(params.Price)
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.SetPrice(r.Context(), caller(r), params.Asset, price); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}
