// Command rectreectl exercises the recttree and spatree engines from the
// command line: it builds sample trees, runs layout/query passes, and logs
// the results, without any rendering or windowing.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("rectreectl: command failed")
		os.Exit(1)
	}
}
