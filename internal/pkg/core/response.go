package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// ErrResponse 错误响应体。
type ErrResponse struct {
	Detail string `json:"detail"`
}

// WriteResponse 统一写响应：err 非空时按错误码映射 HTTP 状态并返回 detail，
// 否则原样返回 data。
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		coder := errors.ParseCoder(err)
		// 非 WithCode 错误或未注册的错误码统一按未知错误处理
		if !errors.IsCode(err, coder.Code()) {
			coder = errors.ParseCoder(errors.WithCode(code.ErrUnknown, "%s", err.Error()))
		}

		if coder.HTTPStatus() >= http.StatusInternalServerError {
			log.L(c).Errorf("%#+v", err)
		} else {
			log.L(c).Debugf("%#+v", err)
		}

		c.JSON(coder.HTTPStatus(), ErrResponse{
			Detail: coder.String(),
		})

		return
	}

	c.JSON(http.StatusOK, data)
}
