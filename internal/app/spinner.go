package app

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/cryptoalert-cli/internal/logger"
)

// Spinner shows that a long wait is in progress.
type Spinner interface {
	Add(n int) error
	Finish() error
}

// spinnerType is the progressbar spinner style.
const spinnerType = 14

// NewProgressSpinner creates an indeterminate progress bar on stderr.
// Spinners are disabled when the log level is above info.
func NewProgressSpinner(description string) Spinner {
	if logger.Level() > zap.InfoLevel {
		return noopSpinner{}
	}

	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(spinnerType),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

type noopSpinner struct{}

func (noopSpinner) Add(int) error { return nil }

func (noopSpinner) Finish() error { return nil }
