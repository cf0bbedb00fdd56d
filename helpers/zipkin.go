package helpers

import (
	"net/http"
	"os"

	"github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"
	httpreporter "github.com/openzipkin/zipkin-go/reporter/http"
	"github.com/rs/zerolog/log"
)

// InitTracer builds the zipkin server middleware. Without a
// ZIPKIN_ADDRESS the middleware is a pass-through.
func InitTracer(port string) func(http.Handler) http.Handler {
	address := os.Getenv("ZIPKIN_ADDRESS")
	if address == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	// set up a span reporter
	reporter := httpreporter.NewReporter("http://" + address + "/api/v2/spans")

	// create our local service endpoint
	endpoint, err := zipkin.NewEndpoint("campusgram", "localhost:"+port)
	if err != nil {
		log.Warn().Err(err).Msg("unable to create local endpoint")
	}

	// initialize our tracer
	tracer, err := zipkin.NewTracer(reporter, zipkin.WithLocalEndpoint(endpoint))
	if err != nil {
		log.Warn().Err(err).Msg("unable to create tracer")
		return func(next http.Handler) http.Handler { return next }
	}

	return zipkinhttp.NewServerMiddleware(tracer, zipkinhttp.TagResponseSize(true))
}
