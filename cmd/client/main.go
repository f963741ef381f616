package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-api-response/internal/adapter"
	"github.com/MKhiriev/go-api-response/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("api-response-client", logger.WithOutput(os.Stderr), logger.WithLevel(zerolog.WarnLevel))

	root := newRootCmd(newOptions(log))
	if err := root.Execute(); err != nil {
		var respErr *adapter.ResponseError
		if errors.As(err, &respErr) {
			fmt.Fprintf(os.Stderr, "error %d (http %d): %s\n", respErr.Code, respErr.Status, respErr.Title)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
