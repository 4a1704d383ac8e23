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

const (
	defaultLimit = 20
	maxLimit     = 100
)

type pageParams struct {
	Owner  string `json:"owner"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

func (p *pageParams) normalize() {
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}

	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

func borrowHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := param.Hash(r, "id")
		if err != nil {
			render.Error(w, err)
			return
		}

		o, err := module.BorrowOrder(r.Context(), id)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.BorrowOrderView(o))
	}
}

func borrowsHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params pageParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		params.normalize()

		ctx := r.Context()
		orders, err := module.BorrowOrders(ctx, params.Owner, params.Offset, params.Limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		var total uint64
		if params.Owner != "" {
			total, err = module.OwnedBorrowCount(ctx, params.Owner)
		} else {
			total, err = module.BorrowOrderCount(ctx)
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"total":  total,
			"orders": views.BorrowOrdersView(orders),
		})
	}
}

func createBorrowHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			BTotal   string       `json:"btotal" valid:"required"`
			BToken   core.AssetID `json:"btoken_id" valid:"required"`
			Duration uint64       `json:"duration"`
			STotal   string       `json:"stotal" valid:"required"`
			SToken   core.AssetID `json:"stoken_id" valid:"required"`
			Interest uint32       `json:"interest"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		btotal, err := number.Parse(params.BTotal)
		if err != nil {
			render.Error(w, err)
			return
		}

		stotal, err := number.Parse(params.STotal)
		if err != nil {
			render.Error(w, err)
			return
		}

		id, err := module.CreateBorrow(r.Context(), caller(r), &core.BorrowRequest{
			BTotal:   btotal,
			BToken:   params.BToken,
			Duration: params.Duration,
			STotal:   stotal,
			SToken:   params.SToken,
			Interest: params.Interest,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"id": id})
	}
}

func cancelBorrowHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := param.Hash(r, "id")
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.CancelBorrow(r.Context(), caller(r), id); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}

func supplyHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := param.Hash(r, "id")
		if err != nil {
			render.Error(w, err)
			return
		}

		o, err := module.SupplyOrder(r.Context(), id)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.SupplyOrderView(o))
	}
}

func suppliesHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params pageParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}
		params.normalize()

		ctx := r.Context()
		orders, err := module.SupplyOrders(ctx, params.Owner, params.Offset, params.Limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		var total uint64
		if params.Owner != "" {
			total, err = module.OwnedSupplyCount(ctx, params.Owner)
		} else {
			total, err = module.SupplyOrderCount(ctx)
		}

		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"total":  total,
			"orders": views.SupplyOrdersView(orders),
		})
	}
}

func createSupplyHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Total     string         `json:"total" valid:"required"`
			SToken    core.AssetID   `json:"stoken" valid:"required"`
			Tokens    []core.AssetID `json:"tokens"`
			Amortgage uint32         `json:"amortgage"`
			Duration  uint64         `json:"duration"`
			Interest  uint32         `json:"interest"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		total, err := number.Parse(params.Total)
		if err != nil {
			render.Error(w, err)
			return
		}

		id, err := module.CreateSupply(r.Context(), caller(r), &core.SupplyRequest{
			Total:     total,
			SToken:    params.SToken,
			Tokens:    params.Tokens,
			Amortgage: params.Amortgage,
			Duration:  params.Duration,
			Interest:  params.Interest,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{"id": id})
	}
}

func cancelSupplyHandler(module *lending.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := param.Hash(r, "id")
		if err != nil {
			render.Error(w, err)
			return
		}

		if err := module.CancelSupply(r.Context(), caller(r), id); err != nil {
			render.Error(w, err)
			return
		}

		ok(w)
	}
}
