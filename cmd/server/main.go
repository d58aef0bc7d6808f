package main

import "github.com/hanulsoft/sajunet/cmd"

func main() {
	cmd.Execute()
}
