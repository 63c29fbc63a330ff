package main

import (
	"testing"

	server "github.com/KanapuramVaishnavi/Core/server"
	"github.com/gin-gonic/gin"
)

func TestRun_CapturesOptions(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedOpts server.Options

	// intercept options
	startServer = func(opts server.Options) {
		capturedOpts = opts
	}

	main()
	run()

	if capturedOpts.JobsHandler == nil {
		t.Fatal("expected a jobs handler to be wired")
	}
	capturedOpts.JobsHandler()
	if capturedOpts.WebServerPreHandler == nil {
		t.Fatal("expected a web server pre-handler to be wired")
	}
	capturedOpts.WebServerPreHandler(gin.New())
}
