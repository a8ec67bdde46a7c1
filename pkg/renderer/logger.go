package renderer

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderLogger prefixes every message with the ID of the render it belongs to
type RenderLogger struct {
	renderID string
	logger   core.Logger
}

// NewRenderLogger wraps logger so its output can be told apart when several
// renders share one destination
func NewRenderLogger(logger core.Logger, renderID string) core.Logger {
	return &RenderLogger{
		renderID: renderID,
		logger:   logger,
	}
}

func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	rl.logger.Printf("[%s] "+format, append([]interface{}{rl.renderID}, args...)...)
}

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}
