package versatile

import (
	"github.com/pombredanne/versatile/internal/log"
	"github.com/pombredanne/versatile/logger"
)

// SetLogger installs the logger used by this library. By default nothing is
// logged.
func SetLogger(l logger.Logger) {
	log.Log = l
}
