package main

import "github.com/Sohail342/task-management/cmd"

func main() {
	cmd.Execute()
}
