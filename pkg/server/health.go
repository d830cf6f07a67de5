package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"go.uber.org/zap"
)

// ServiceName is reported as serving by the gRPC health check.
const ServiceName = "beerreview.v1.BeerReview"

// Mount registers the JSON API at the root of mux next to the gRPC health and
// reflection endpoints.
func (s *Server) Mount(mux *http.ServeMux) {
	interceptors := connect.WithInterceptors(LoggingInterceptor(s.logger))

	checker := grpchealth.NewStaticChecker(ServiceName)
	mux.Handle(grpchealth.NewHandler(checker, interceptors))

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	mux.Handle("/", s.Router())
}

// LoggingInterceptor logs every unary connect call at debug level and failures at warn.
func LoggingInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, request connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			response, err := next(ctx, request)
			if err != nil {
				logger.Warn("rpc failed",
					zap.String("procedure", request.Spec().Procedure),
					zap.Duration("elapsed", time.Since(start)),
					zap.Error(err))

				return response, err
			}

			logger.Debug("rpc",
				zap.String("procedure", request.Spec().Procedure),
				zap.Duration("elapsed", time.Since(start)))

			return response, nil
		}
	}
}
