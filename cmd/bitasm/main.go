// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}
