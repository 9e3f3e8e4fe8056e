package code

import (
	"fmt"
	"net/http"

	"github.com/marmotedu/errors"
)

// ErrCode 实现 errors.Coder，Ext 作为对外展示的 detail。
type ErrCode struct {
	// C 业务错误码
	C int

	// HTTP 对应的 HTTP 状态码
	HTTP int

	// Ext 对外错误信息
	Ext string

	// Ref 参考文档
	Ref string
}

var _ errors.Coder = &ErrCode{}

func (coder ErrCode) Code() int {
	return coder.C
}

func (coder ErrCode) String() string {
	return coder.Ext
}

func (coder ErrCode) Reference() string {
	return coder.Ref
}

func (coder ErrCode) HTTPStatus() int {
	if coder.HTTP == 0 {
		return http.StatusInternalServerError
	}

	return coder.HTTP
}

func register(code int, httpStatus int, message string, refs ...string) {
	if httpStatus < 100 || httpStatus > 599 {
		panic(fmt.Sprintf("HTTP 状态码 %d 不合法（必须在 100~599 之间）", httpStatus))
	}

	var reference string
	if len(refs) > 0 {
		reference = refs[0]
	}

	errors.MustRegister(&ErrCode{
		C:    code,
		HTTP: httpStatus,
		Ext:  message,
		Ref:  reference,
	})
}
