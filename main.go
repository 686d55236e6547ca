package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/shuttle/internal/shuttle/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := shuttle(); err != nil {
		logrus.Fatal(err)
	}
}

func shuttle() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
