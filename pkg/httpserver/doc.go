// Package httpserver runs the classification service's HTTP handler with
// graceful shutdown.
//
// Run blocks until the context is cancelled, then drains in-flight requests
// within the shutdown timeout. Signal handling is left to the caller:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, mux); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes.
package httpserver
