// Package bootstrap wires a translation job together: validated
// options, structured logging, optional OTLP tracing and metrics, and
// a ready-to-use translator with uniform shutdown.
//
//	app, err := bootstrap.NewApp(config.Default("wordcount"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Shutdown(context.Background())
//
//	result, err := app.Translate(ctx, p)
package bootstrap
