package rest

import (
	"net/http"

	"lendbook/core"
	"lendbook/handler/param"
	"lendbook/handler/render"
	"lendbook/handler/views"
	"lendbook/pkg/number"
	"lendbook/service/lending"

	"github.com/holiman/uint256"
)

func balanceHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := param.AssetID(r, "asset")
		if err != nil {
			render.Error(w, err)
			return
		}

		b, err := module.Balance(r.Context(), asset, param.String(r, "account"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.BalanceView(b))
	}
}

func allowanceHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := param.AssetID(r, "asset")
		if err != nil {
			render.Error(w, err)
			return
		}

		owner, spender := param.String(r, "owner"), param.String(r, "spender")
		value, err := module.Allowance(r.Context(), asset, owner, spender)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Allowance{
			Asset:   asset,
			Owner:   owner,
			Spender: spender,
			Value:   number.String(value),
		})
	}
}

type amountParams struct {
	Asset core.AssetID `json:"asset" valid:"required"`
	Value string       `json:"value" valid:"required"`
}

func (p amountParams) amount() (*uint256.Int, error) {
	return number.Parse(p.Value)
}

func transferHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			amountParams
			To string `json:"to" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := params.amount()
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.Transfer(r.Context(), caller(r), params.Asset, params.To, value); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}

func approveHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			amountParams
			Spender string `json:"spender" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := params.amount()
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.Approve(r.Context(), caller(r), params.Asset, params.Spender, value); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}

func transferFromHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			amountParams
			From string `json:"from" valid:"required"`
			To   string `json:"to" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := params.amount()
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.TransferFrom(r.Context(), caller(r), params.Asset, params.From, params.To, value); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}

func reserveHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := params.amount()
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.Reserve(r.Context(), caller(r), params.Asset, value); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}

func unreserveHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params amountParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		value, err := params.amount()
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.Unreserve(r.Context(), caller(r), params.Asset, value); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}
