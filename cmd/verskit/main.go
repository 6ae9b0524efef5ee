package main

import (
	"github.com/s33d1ing/verskit/pkg/cli"
)

func main() {
	cli.Run()
}
