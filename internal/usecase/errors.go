package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// HandlerへHTTPステータスとメッセージを運ぶエラー。
// DetailにはDB等の生エラー文字列を入れる（社内向けツールなのでそのまま返す）。
type HTTPError struct {
	Status  int
	Message string
	Detail  string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// 500系。元エラーをDetailとして添える。
func NewDBError(message string, err error) error {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: message,
		Detail:  detail,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
