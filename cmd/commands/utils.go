package commands

import (
	"fmt"
	"os"

	"github.com/CSCI4830-UNO/PetChart/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("petchart error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`petchart - pet photo attachment service

Usage:
  petchart run <path/to/config.yml>   start the service
  petchart version                    print version
  petchart help                       show this help`) //nolint
}
