package main

import (
	"fmt"
	"os"

	"github.com/bearycool11/pmll"
	"github.com/bearycool11/pmll/src/system/api"
	"github.com/bearycool11/pmll/src/system/cli"
	"github.com/bearycool11/pmll/src/system/config"
	"github.com/bearycool11/pmll/src/system/integrity"
	"github.com/voodooEntity/archivist"
	"github.com/voodooEntity/gitsapi"
	gitsapiConfig "github.com/voodooEntity/gitsapi/src/config"
)

const VERSION = "0.1.0"

func main() {
	// initially we gonne parse the cli args
	cli.ParseArgs()

	// apply env overrides and bootstrap the logger
	config.Init()
	if cli.Data.Verbose {
		config.Set("LOG_LEVEL", "debug")
	}
	archivist.Init(config.Get("LOG_LEVEL"), config.Get("LOG_TARGET"), config.Get("LOG_PATH"))

	switch cli.Data.Command {
	case "record":
		record()
	case "fingerprint":
		fingerprint()
	case "verify":
		verify()
	case "serve":
		serve()
	case "version":
		fmt.Println("pmll " + VERSION)
	default:
		cli.PrintHelpText()
	}
}

func record() {
	brain := newBrain()
	response, err := brain.Record(cli.Data.Input)
	if nil != err {
		archivist.Error("Could not record input", err.Error())
		os.Exit(1)
	}
	fmt.Println(response)
	fmt.Println("Current in-memory context:", brain.History())
}

func fingerprint() {
	fmt.Println(integrity.New().Fingerprint(cli.Data.Input))
}

func verify() {
	if integrity.New().Verify(cli.Data.Input, cli.Data.Signature) {
		fmt.Println("valid")
		return
	}
	// a mismatch is a regular outcome, we just signal it
	// through the exit code for scripting
	fmt.Println("invalid")
	os.Exit(1)
}

func serve() {

	// init the gitsapi config
	gitsApiCfg := map[string]string{
		"HOST":           config.Get("HOST"),
		"PORT":           config.Get("PORT"),
		"PERSISTENCE":    "inactive",
		"LOG_TARGET":     config.Get("LOG_TARGET"),
		"LOG_PATH":       config.Get("LOG_PATH"),
		"LOG_LEVEL":      config.Get("LOG_LEVEL"),
		"CORS_HEADER":    "*",
		"CORS_ORIGIN":    "*",
		"SSL_CERT_FILE":  "rsa.crt",
		"SSL_KEY_FILE":   "rsa.key",
		"TOKEN_LIFETIME": "3600",
		"AUTH_ACTIVE":    "no",
	}
	gitsapiConfig.Init(gitsApiCfg)

	// bootstrap the brain whose gits memory the api exposes
	brain := newBrain()

	// initing the pmll specific endpoints
	api.Extend(brain)

	// start the actual gitsapi
	gitsapi.Start()
}

func newBrain() *pmll.Pmll {
	brain := pmll.New(pmll.Settings{
		Ident: config.Get("IDENT"),
	})
	if err := brain.SetProcessor(config.Get("PROCESSOR")); nil != err {
		archivist.Error("Unknown processor configured", err.Error())
		os.Exit(1)
	}
	if err := brain.Start(); nil != err {
		archivist.Error("Could not start pmll", err.Error())
		os.Exit(1)
	}
	return brain
}
