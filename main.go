package main

import "github.com/thelsien/Snaxlog-sub000/cmd/snaxlog"

func main() {
	snaxlog.Execute()
}
