package main

import "s3hive/cmd"

func main() {
	cmd.Execute()
}
