package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Azure/ai-gateway-lab/pkg/check"
	utillog "github.com/Azure/ai-gateway-lab/pkg/util/log"
)

var gitCommit = "unknown"

var (
	configFile        = flag.String("config", "", "lab configuration file (YAML); built-in defaults when unset")
	envFile           = flag.String("env-file", ".env", "env file the deployer writes and the checks read")
	secondaryLocation = flag.String("secondary-location", "", "secondary region; the primary's pair when unset")
	outputDir         = flag.String("o", ".", "directory generate writes the template artifacts to")
	requests          = flag.Int("n", check.DefaultLoadBalanceRequests, "number of requests the load balance check sends")
	principalID       = flag.String("principal", "", "principal object ID for the roles check")
	effective         = flag.Bool("effective", false, "also evaluate effective access through the CheckAccess PDP")
)

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), "usage: \n")
	fmt.Fprintf(flag.CommandLine.Output(), "       %s deploy {resource-group} {location} [tester-principal-id]\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s generate\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s check {all,loadbalance,responses,access,roles}\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s destroy {resource-group}\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	log := utillog.GetLogger()

	log.Printf("starting, git commit %s", gitCommit)

	var err error
	switch strings.ToLower(flag.Arg(0)) {
	case "deploy":
		checkArgs(3, 4)
		err = deploy(ctx, log)
	case "generate":
		checkArgs(1, 1)
		err = generate(log)
	case "check":
		checkArgs(2, 2)
		err = runCheck(ctx, log)
	case "destroy":
		checkArgs(2, 2)
		err = destroy(ctx, log)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func checkArgs(min, max int) {
	if len(flag.Args()) < min || len(flag.Args()) > max {
		usage()
		os.Exit(2)
	}
}
