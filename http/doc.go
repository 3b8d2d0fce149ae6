// Package http provides the request and response helpers used by the
// example application's handlers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	// Bind a JSON or url-encoded body into a struct
//	var payload struct {
//	    Address string `json:"address"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(v)                        // 200 {"data": v}
//	res.Created(v)                        // 201 {"data": v}
//	res.Error(http.StatusBadRequest, msg) // {"message": msg}
//	res.ServiceUnavailable(err)           // 503, err is logged
package http
