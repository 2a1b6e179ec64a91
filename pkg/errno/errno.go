package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode              = 0
	ServiceErrCode           = 50001
	ParamErrCode             = 40001
	AuthorizationErrCode     = 40101
	ForbiddenErrCode         = 40301
	NotFoundErrCode          = 40401
	DBUnavailableCode        = 50301
	StreamingUnavailableCode = 50302
)

type ErrNo struct {
	ErrCode    int64
	ErrMsg     string
	StatusCode int
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, status int, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg, StatusCode: status}
}

// WithMessage returns a copy of the error carrying a more specific message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success = NewErrNo(SuccessCode, consts.StatusOK, "success")
	// Created is Success with a 201 for resource-creating endpoints.
	Created          = NewErrNo(SuccessCode, consts.StatusCreated, "success")
	ServiceErr       = NewErrNo(ServiceErrCode, consts.StatusInternalServerError, "service internal error")
	ParamErr         = NewErrNo(ParamErrCode, consts.StatusBadRequest, "invalid parameter")
	AuthorizationErr = NewErrNo(AuthorizationErrCode, consts.StatusUnauthorized, "authorization failed")
	ForbiddenErr     = NewErrNo(ForbiddenErrCode, consts.StatusForbidden, "access denied")
	NotFoundErr      = NewErrNo(NotFoundErrCode, consts.StatusNotFound, "resource not found")

	DBUnavailableErr        = NewErrNo(DBUnavailableCode, consts.StatusServiceUnavailable, "database unavailable")
	StreamingUnavailableErr = NewErrNo(StreamingUnavailableCode, consts.StatusServiceUnavailable, "video streaming is not available in this deployment")
)

// ConvertErr converts any error into an ErrNo. Errors that are not already
// an ErrNo are treated as internal errors; the original message is kept for
// the log-side envelope.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}
