package main

import "github.com/jsphweid/steelchords/cmd"

func main() {
	cmd.Execute()
}
