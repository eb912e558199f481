package app

import "net/http"

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get404() errCtx {
	return errCtx{
		Code:  http.StatusNotFound,
		Title: "Page not found",
		Msg:   "Sorry, we couldn't find the page you were looking for.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
