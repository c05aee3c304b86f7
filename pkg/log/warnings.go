package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/toxicafunk/doddle-model/pkg/errors"
)

// UseZerologWarnings routes library warnings through a zerolog logger
// writing to w. Warnings that implement zerolog.LogObjectMarshaler are
// emitted with their structured fields; anything else falls back to the
// plain error message. Passing nil writes to stderr.
func UseZerologWarnings(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	errors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().Object("warning", obj).Msg(warning.Error())
			return
		}
		logger.Warn().Msg(warning.Error())
	})
}
