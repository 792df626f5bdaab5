package main

import (
	"github.com/theirongolddev/dburn/cmd"
	"github.com/theirongolddev/dburn/internal/logging"
)

func main() {
	logging.Setup()
	cmd.Execute()
}
