package http_impl

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Status int32  `json:"status"`
	Code   int32  `json:"code"`
	Err    string `json:"error"`
}

func sendError(c echo.Context, status int, err error) error {
	e := &errorResponse{
		Status: int32(status), //nolint:gosec // http status codes fit
		Code:   int32(errors.CodeOf(err)),
		Err:    err.Error(),
	}

	return c.JSON(status, e)
}
