// Package http provides Laravel-compatible request and response helpers.
//
// # Request
//
// Request wraps *http.Request with a fluent API mirroring Laravel's
// Illuminate\Http\Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Bind a JSON body into a struct
//	var payload struct {
//	    Name string `json:"name"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	// Input retrieval (query string + POST body)
//	name := req.Input("name", "default")
//	page := req.Query("page", "1")
//	ok   := req.Has("name")
//
//	// Headers and auth
//	token := req.BearerToken()
//	val   := req.Header("X-Custom")
//
// # Response
//
// Response wraps http.ResponseWriter with JSON envelope helpers.
//
//	res := gohttp.NewResponse(w)
//	res.Success(payload)            // 200 {"data": ...}
//	res.Created(payload)            // 201 {"data": ...}
//	res.Error(404, "not found")     // {"message": "not found"}
//	res.Unauthorized()              // 401 {"message": "Unauthenticated."}
package http
