package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	sexpr "github.com/xiam/lisper"
)

const config = `
aliases:
  lt: "<"
exclude: [tan]
`

func main() {
	if os.Getenv("DEBUG") != "" {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		sexpr.SetLogger(logger)
	}

	cfg, err := sexpr.LoadConfig(strings.NewReader(config))
	if err != nil {
		log.Fatal("sexpr.LoadConfig:", err)
	}

	env, err := sexpr.NewEnvironment(cfg)
	if err != nil {
		log.Fatal("sexpr.NewEnvironment:", err)
	}

	input := `
		(+ 52 13)
		(mod 52 13)
		(lt 1 5 2)
		(sin (/ pi 2))
		pi
	`

	values, err := sexpr.NewReader(strings.NewReader(input)).Eval(env)
	if err != nil {
		log.Fatal("sexpr.Eval:", err)
	}

	for i := range values {
		fmt.Printf("=> %v\n", values[i])
	}
}
