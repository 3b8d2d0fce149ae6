package app

import (
	"net/http"

	"github.com/km-arc/go-dep/framework/container"
	gohttp "github.com/km-arc/go-dep/http"
	"github.com/km-arc/go-dep/routing"
)

// notifyRequest is the body of POST /api/v1/notify. An empty address sends
// the canned notification.
type notifyRequest struct {
	Address string `json:"address"`
	Message string `json:"message"`
}

// Routes mounts the example API. Handlers resolve their dependencies from reg
// per request and answer 503 when one is missing.
func Routes(r *routing.Router, reg *container.Registry) {
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Post("/notify", notify(reg))
		api.Get("/outbox", outbox(reg))
		api.Get("/greet", greet(reg))
	})
}

func notify(reg *container.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)

		var body notifyRequest
		if err := gohttp.NewRequest(req).Bind(&body); err != nil {
			res.Error(http.StatusBadRequest, err.Error())
			return
		}

		notifier, err := container.Lookup[*Notifier](reg)
		if err != nil {
			res.ServiceUnavailable(err)
			return
		}

		var line string
		if body.Address == "" {
			line = notifier.Operate()
		} else {
			line = notifier.Notify(body.Address, body.Message)
		}
		res.Created(map[string]any{"sent": line})
	}
}

func outbox(reg *container.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		emails, err := container.Lookup[*EmailService](reg)
		if err != nil {
			res.ServiceUnavailable(err)
			return
		}
		res.Success(emails.Sent())
	}
}

func greet(reg *container.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		greeter, err := container.Lookup[Greeter](reg)
		if err != nil {
			res.ServiceUnavailable(err)
			return
		}
		res.Success(map[string]any{"greeting": greeter.Greet()})
	}
}
