package param

import (
	"encoding/json"
	"net/http"

	"lendbook/core"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/spf13/cast"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(true)
}

// Binding decode query parameters on GET and the json body otherwise, then validate
func Binding(r *http.Request, v interface{}) error {
	if r.Method == http.MethodGet {
		if err := decoder.Decode(v, r.URL.Query()); err != nil {
			return err
		}
	} else if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}

	_, err := govalidator.ValidateStruct(v)
	return err
}

// String url parameter
func String(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// Uint64 url parameter as uint64
func Uint64(r *http.Request, key string) (uint64, error) {
	v, err := cast.ToUint64E(chi.URLParam(r, key))
	if err != nil {
		return 0, core.ErrInvalidArgument
	}

	return v, nil
}

// AssetID url parameter as asset id
func AssetID(r *http.Request, key string) (core.AssetID, error) {
	v, err := Uint64(r, key)
	return core.AssetID(v), err
}

// Hash url parameter as hex hash
func Hash(r *http.Request, key string) (core.Hash, error) {
	return core.HashFromString(chi.URLParam(r, key))
}
