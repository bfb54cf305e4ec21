package main

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Debug("odacfg failed")
		os.Exit(1)
	}
}
