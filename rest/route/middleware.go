package route

import (
	"net/http"

	"github.com/evergreen-ci/gimlet"
	"github.com/nutshell-app/nutshell"
	"github.com/rs/cors"
)

// NewCORSMiddleware returns middleware that answers preflight requests and
// sets CORS headers for the allowed origins.
func NewCORSMiddleware(conf nutshell.CORSConfig) gimlet.Middleware {
	origins := conf.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
}
