package render

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lendbook/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorln(err)
	}
}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, dataResponse{Data: v})
}

// Error write err, the status follows its twirp code
func Error(w http.ResponseWriter, err error) {
	twerr := codes.From(err)

	code := codes.Get(twerr.Code())
	if v, err := strconv.Atoi(twerr.Meta(codes.CustomCodeKey)); err == nil {
		code = v
	}

	write(w, twirp.ServerHTTPStatusFromErrorCode(twerr.Code()), errorResponse{
		Code: code,
		Msg:  twerr.Msg(),
	})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.InvalidArgumentError("request", err.Error()))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}
