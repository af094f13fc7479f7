package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/raako71/RClone-Diff/cli"
)

const app = "rclone-diff"

var gitRepo = "raako71/RClone-Diff"
var gitCommit = "unknown"
var gitTag = "unknown"

func printVersion() {
	if gitTag == "" {
		gitTag = "err-no-git-tag"
	}

	log.Debugf("%s (dist=%s; version=%s; commit=%s)", app, gitRepo, gitTag, gitCommit)
}

func main() {
	configureLogrus()
	printVersion()

	cli.SetVersion(gitTag)
	cli.Execute()
}

func configureLogrus() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
}
