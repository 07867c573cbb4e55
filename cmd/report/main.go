package main

import (
	"os"

	"github.com/vfg2006/smartshop-insights/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.L.Debug(err)
		os.Exit(1)
	}
}
